package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/personal-assistant/internal/domain"
	"github.com/marcos-nsantos/personal-assistant/internal/domain/valueobject"
)

func TestNewPhone(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		want     string
		wantKind domain.ValidationKind
	}{
		{name: "digits only", raw: "1234567890", want: "1234567890"},
		{name: "formatted", raw: "(123) 456-7890", want: "1234567890"},
		{name: "dashes", raw: "123-456-7890", want: "1234567890"},
		{name: "empty", raw: "", wantKind: domain.EmptyValue},
		{name: "blank", raw: "   ", wantKind: domain.EmptyValue},
		{name: "nine digits", raw: "123456789", wantKind: domain.InvalidLength},
		{name: "eleven digits", raw: "+1 123 456 7890", wantKind: domain.InvalidLength},
		{name: "letters only", raw: "phone", wantKind: domain.InvalidLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := valueobject.NewPhone(tt.raw)
			if tt.wantKind != "" {
				require.ErrorIs(t, err, domain.ErrValidation)
				kind, _ := domain.ValidationKindOf(err)
				assert.Equal(t, tt.wantKind, kind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.String())
		})
	}
}

func TestPhone_Equal(t *testing.T) {
	a, err := valueobject.NewPhone("(123) 456-7890")
	require.NoError(t, err)
	b, err := valueobject.NewPhone("123.456.7890")
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "0123", valueobject.NormalizePhone("a0-1 2(3)"))
	assert.Empty(t, valueobject.NormalizePhone("none"))
}
