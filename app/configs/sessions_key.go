package configs

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"

	"github.com/gorilla/securecookie"
	"go.uber.org/zap"
)

type SessionKeys struct {
	AuthKey []byte
	EncKey  []byte
	CSRFKey []byte
}

// LoadSessionKeys decodes the base64 keys from the environment. Outside
// production, missing keys are replaced by random ones that live for the
// process lifetime only.
func LoadSessionKeys(env ENV, logger *zap.Logger) (*SessionKeys, error) {
	authKey, err := decodeKey("APP_AUTH_KEY", env.AppAuthKey, 64, env, logger)
	if err != nil {
		return nil, err
	}
	encKey, err := decodeKey("APP_ENC_KEY", env.AppEncKey, 32, env, logger)
	if err != nil {
		return nil, err
	}
	csrfKey, err := decodeKey("CSRF_KEY", env.CSRFKey, 32, env, logger)
	if err != nil {
		return nil, err
	}

	if len(encKey) != 16 && len(encKey) != 24 && len(encKey) != 32 {
		return nil, fmt.Errorf("APP_ENC_KEY has invalid length %d after decoding. Must be 16, 24, or 32 bytes for AES encryption", len(encKey))
	}
	if len(csrfKey) != 32 {
		return nil, fmt.Errorf("CSRF_KEY has invalid length %d after decoding. Must be 32 bytes", len(csrfKey))
	}

	logger.Info("Session keys loaded")
	return &SessionKeys{
		AuthKey: authKey,
		EncKey:  encKey,
		CSRFKey: csrfKey,
	}, nil
}

func decodeKey(name, value string, size int, env ENV, logger *zap.Logger) ([]byte, error) {
	if value == "" {
		if env.IsProduction() {
			return nil, fmt.Errorf("%s environment variable not set", name)
		}
		logger.Warn("Key not set, using an ephemeral random key", zap.String("key", name))
		return securecookie.GenerateRandomKey(size), nil
	}

	key, err := base64.URLEncoding.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s from Base64: %w", name, err)
	}
	return key, nil
}

func GenerateAndPrintSessionKeys(out io.Writer, envFilePath string) error {
	fmt.Fprintln(out, "Generating new session keys...")

	keys := []struct {
		name string
		size int
	}{
		{"APP_AUTH_KEY", 64},
		{"APP_ENC_KEY", 32},
		{"CSRF_KEY", 32},
	}

	lines := ""
	for _, k := range keys {
		raw := securecookie.GenerateRandomKey(k.size)
		if raw == nil {
			return fmt.Errorf("error: could not generate %s", k.name)
		}
		lines += fmt.Sprintf("%s=%s\n", k.name, base64.URLEncoding.EncodeToString(raw))
	}

	fmt.Fprintln(out, "\n================================================")
	fmt.Fprintln(out, "Generated keys:")
	fmt.Fprint(out, lines)
	fmt.Fprintln(out, "================================================")

	file, err := os.Create(envFilePath)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", envFilePath, err)
	}
	defer file.Close()

	if _, err := io.WriteString(file, lines); err != nil {
		return fmt.Errorf("failed to write keys to file %s: %w", envFilePath, err)
	}

	fmt.Fprintf(out, "\nKeys have been written to '%s'.\n", envFilePath)
	fmt.Fprintln(out, "If you regenerate, existing admin sessions will be invalidated.")

	return nil
}
