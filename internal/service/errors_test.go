package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/phrazzld/athlete-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogPersistenceFailure(t *testing.T) {
	t.Parallel()

	duplicate := store.NewStoreError("athlete", "create", "atletas.cpf",
		fmt.Errorf("%w: UNIQUE constraint failed: atletas.cpf", store.ErrDuplicate))

	tests := []struct {
		name  string
		err   error
		level string
	}{
		{"unique violation", duplicate, "WARN"},
		{"other failure", errors.New("disk I/O error"), "ERROR"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := slog.New(slog.NewJSONHandler(&buf, nil))

			logPersistenceFailure(context.Background(), log, "failed to persist athlete", tc.err,
				slog.String("athlete_id", "abc"))

			var entry map[string]interface{}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tc.level, entry["level"])
			assert.Equal(t, "failed to persist athlete", entry["msg"])
			assert.Equal(t, "abc", entry["athlete_id"])
			assert.NotEmpty(t, entry["error"])
		})
	}
}
