package formats_test

import (
	"testing"
	"time"

	"grail-tracker/feature/grail/formats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want formats.Format
	}{
		{"backup", formats.FormatBackup},
		{"TOD2", formats.FormatToD2},
		{"numeric", formats.FormatToD2},
		{" d2-holy-grail ", formats.FormatNested},
		{"nested", formats.FormatNested},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := formats.ParseFormat(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := formats.ParseFormat("csv")
	assert.ErrorIs(t, err, formats.ErrUnknownFormat)
}

func TestFilename(t *testing.T) {
	at := time.Date(2024, 3, 1, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "backup-backup-2024-03-01.json", formats.Filename(formats.FormatBackup, at))
	assert.Equal(t, "tod2-backup-2024-03-01.txt", formats.Filename(formats.FormatToD2, at))
	assert.Equal(t, "d2-holy-grail-backup-2024-03-01.json", formats.Filename(formats.FormatNested, at))
}

func TestRegistry(t *testing.T) {
	r := formats.NewRegistry(zap.NewNop())
	for _, f := range formats.Formats {
		a, err := r.Adapter(f)
		require.NoError(t, err)
		assert.Equal(t, f, a.Format())
	}

	_, err := r.Adapter("csv")
	assert.ErrorIs(t, err, formats.ErrUnknownFormat)
}

func TestMalformedError(t *testing.T) {
	r := formats.NewRegistry(zap.NewNop())
	for _, f := range formats.Formats {
		t.Run(string(f), func(t *testing.T) {
			a, err := r.Adapter(f)
			require.NoError(t, err)

			for _, doc := range []string{`{not json`, `"just a string"`, `42`} {
				_, err := a.Decode([]byte(doc), nil, emptyRecord())
				require.Error(t, err, doc)
				assert.ErrorIs(t, err, formats.ErrMalformed)

				var malformed *formats.MalformedError
				require.ErrorAs(t, err, &malformed)
				assert.Equal(t, f, malformed.Format)
				assert.NotEmpty(t, malformed.Guidance)
			}
		})
	}
}
