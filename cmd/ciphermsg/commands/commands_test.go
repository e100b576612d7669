package commands

import (
	"bytes"
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/maxatome/go-testdeep/td"
	"github.com/spf13/pflag"

	"ciphermsg/internal/services/identity"
)

const pass = "Correct-Horse-9"

// run executes the CLI with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := run(t, args...)
	if err != nil {
		t.Fatalf("ciphermsg %s: %v", strings.Join(args, " "), err)
	}
	return strings.TrimSpace(out)
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	for _, legacy := range []bool{false, true} {
		name := "current"
		if legacy {
			name = "legacy"
		}
		t.Run(name, func(t *testing.T) {
			alice, bob := t.TempDir(), t.TempDir()
			mustRun(t, "keygen", "--home", alice, "-p", pass)
			mustRun(t, "keygen", "--home", bob, "-p", pass)
			alicePub := mustRun(t, "pubkey", "--home", alice, "-p", pass)
			bobPub := mustRun(t, "pubkey", "--home", bob, "-p", pass)

			encArgs := []string{"encode", alicePub, "hello there", "--home", bob, "-p", pass}
			decArgs := []string{"decode", bobPub, "", "--home", alice, "-p", pass}
			if legacy {
				encArgs = append(encArgs, "--legacy")
				decArgs = append(decArgs, "--legacy")
			}
			env := mustRun(t, encArgs...)
			decArgs[2] = env

			td.Cmp(t, mustRun(t, decArgs...), "hello there")
		})
	}
}

func TestDecode_NotForMe(t *testing.T) {
	alice, bob, carol := t.TempDir(), t.TempDir(), t.TempDir()
	for _, home := range []string{alice, bob, carol} {
		mustRun(t, "keygen", "--home", home, "-p", pass)
	}
	alicePub := mustRun(t, "pubkey", "--home", alice, "-p", pass)
	bobPub := mustRun(t, "pubkey", "--home", bob, "-p", pass)

	env := mustRun(t, "encode", alicePub, "for alice", "--home", bob, "-p", pass)

	_, err := run(t, "decode", bobPub, env, "--home", carol, "-p", pass)
	td.CmpTrue(t, errors.Is(err, errNotDecoded))
}

func TestEncode_Base64Output(t *testing.T) {
	home := t.TempDir()
	mustRun(t, "keygen", "--home", home, "-p", pass, "--curve", "x448")
	pub := mustRun(t, "pubkey", "--home", home, "-p", pass, "--curve", "x448")

	env := mustRun(t, "encode", pub, "b64", "--home", home, "-p", pass, "--curve", "x448", "--output", "base64")
	raw, err := base64.StdEncoding.DecodeString(env)
	td.CmpNoError(t, err)
	td.Cmp(t, raw[0], byte(0x01))

	out := mustRun(t, "decode", pub, env, "--home", home, "-p", pass, "--curve", "x448", "--output", "base64")
	td.Cmp(t, out, "b64")
}

func TestFingerprint(t *testing.T) {
	home := t.TempDir()
	created := mustRun(t, "keygen", "--home", home, "-p", pass)
	fp := mustRun(t, "fingerprint", "--home", home, "-p", pass)

	td.Cmp(t, fp, td.HasPrefix("Fingerprint: "))
	td.Cmp(t, created, td.Contains(fp))
}

func TestPassphraseRequired(t *testing.T) {
	t.Setenv("CIPHERMSG_PASSPHRASE", "")
	_, err := run(t, "keygen", "--home", t.TempDir())
	td.CmpTrue(t, errors.Is(err, errPassphraseRequired))
}

func TestKeygen_WeakPassphrase(t *testing.T) {
	_, err := run(t, "keygen", "--home", t.TempDir(), "-p", "weak")
	td.CmpTrue(t, errors.Is(err, identity.ErrWeakPassphrase))
}

func TestInvalidCurveFlag(t *testing.T) {
	_, err := run(t, "keygen", "--home", t.TempDir(), "-p", pass, "--curve", "p256")
	td.CmpError(t, err)
}

func TestConfigFileAndEnv(t *testing.T) {
	home := t.TempDir()
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	td.CmpNoError(t, os.WriteFile(cfgPath, []byte("home: "+home+"\ncurve: x25519\n"), 0o600))

	t.Setenv("CIPHERMSG_CONFIG", cfgPath)
	t.Setenv("CIPHERMSG_PASSPHRASE", pass)

	created := mustRun(t, "keygen")
	td.Cmp(t, created, td.Contains("(x25519)"))
	_, err := os.Stat(filepath.Join(home, "keypair.json.enc"))
	td.CmpNoError(t, err)
}

func TestSetFlagsFromEnv(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	a := fs.String("log-level", "", "")
	b := fs.String("home", "", "")
	td.CmpNoError(t, fs.Parse([]string{"--home", "/from/flag"}))

	t.Setenv("CIPHERMSG_LOG_LEVEL", "debug")
	t.Setenv("CIPHERMSG_HOME", "/from/env")
	td.CmpNoError(t, setFlagsFromEnv("CIPHERMSG_", fs))

	td.Cmp(t, *a, "debug")
	td.Cmp(t, *b, "/from/flag")
}

func TestSetFlagsFromEnv_InvalidValue(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	legacy := fs.Bool("legacy", false, "")
	td.CmpNoError(t, fs.Parse(nil))

	t.Setenv("CIPHERMSG_LEGACY", "sometimes")
	err := setFlagsFromEnv("CIPHERMSG", fs)
	td.CmpError(t, err)
	td.Cmp(t, err.Error(), td.Contains("CIPHERMSG_LEGACY"))
	td.CmpFalse(t, *legacy)
}

func TestInvalidEnvValueFailsCommand(t *testing.T) {
	home := t.TempDir()
	mustRun(t, "keygen", "--home", home, "-p", pass)
	pub := mustRun(t, "pubkey", "--home", home, "-p", pass)

	t.Setenv("CIPHERMSG_LEGACY", "sometimes")
	_, err := run(t, "encode", pub, "x", "--home", home, "-p", pass)
	td.CmpError(t, err)
	td.Cmp(t, err.Error(), td.Contains("CIPHERMSG_LEGACY"))
}
