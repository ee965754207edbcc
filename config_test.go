package txkit

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/txkit/types"
)

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    func(c *Config)
		wantErr string
	}{
		{
			name: "valid",
			give: func(*Config) {},
		},
		{
			name:    "failure: missing chain",
			give:    func(c *Config) { c.Chain = 0 },
			wantErr: "Config.Chain",
		},
		{
			name:    "failure: missing account provider",
			give:    func(c *Config) { c.Accounts = nil },
			wantErr: "Config.Accounts",
		},
		{
			name:    "failure: missing batch watcher",
			give:    func(c *Config) { c.Batches = nil },
			wantErr: "Config.Batches",
		},
		{
			name:    "failure: negative timeout",
			give:    func(c *Config) { c.ConfirmationTimeout = -time.Second },
			wantErr: "Config.ConfirmationTimeout",
		},
		{
			name:    "failure: invalid call",
			give:    func(c *Config) { c.Calls = []types.Call{testCalls[0], {}} },
			wantErr: "invalid call at index 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := newProviderMocks(t).config(testCalls)
			tt.give(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
			} else {
				require.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestConfig_confirmationTimeout(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultConfirmationTimeout, Config{}.confirmationTimeout())
	assert.Equal(t, time.Second, Config{ConfirmationTimeout: time.Second}.confirmationTimeout())
}

func TestOptions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Transact", Options{}.Label())
	assert.Equal(t, "Mint", Options{Text: "Mint"}.Label())

	require.NoError(t, Options{Text: "Pay"}.Validate())
	require.ErrorContains(t, Options{Text: strings.Repeat("x", 65)}.Validate(), "invalid options")
}
