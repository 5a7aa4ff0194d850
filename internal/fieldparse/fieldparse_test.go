package fieldparse_test

import (
	"testing"

	"github.com/apparelshop/catalog-syncer/internal/fieldparse"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniParseInt(t *testing.T) {
	tests := map[string]struct {
		input   string
		want    int32
		wantErr bool
	}{
		"plain":              {input: "42", want: 42},
		"spaces stripped":    {input: " 1 990 ", want: 1990},
		"negative":           {input: "-5", want: -5},
		"empty error":        {input: "", wantErr: true},
		"decimal error":      {input: "12.5", wantErr: true},
		"text error":         {input: "many", wantErr: true},
		"overflow error":     {input: "3000000000", wantErr: true},
		"mixed digits error": {input: "12a", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := fieldparse.ParseInt(tt.input)

			if tt.wantErr {
				require.Error(t, err, "should return parsing error")
				return
			}

			require.NoError(t, err, "shouldn't return any error")
			assert.Equal(t, tt.want, got, "should return correct value")
		})
	}
}

func TestUniParseDecimal(t *testing.T) {
	tests := map[string]struct {
		input   string
		want    string
		wantErr bool
	}{
		"point separator":          {input: "12.5", want: "12.5"},
		"comma separator":          {input: "12,5", want: "12.5"},
		"spaces stripped":          {input: " 1 200,5 ", want: "1200.5"},
		"integer":                  {input: "38", want: "38"},
		"empty error":              {input: "", wantErr: true},
		"multiple separator error": {input: "12.5.3", wantErr: true},
		"mixed separator error":    {input: "12,5.3", wantErr: true},
		"text error":               {input: "deep", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := fieldparse.ParseDecimal(tt.input)

			if tt.wantErr {
				require.Error(t, err, "should return parsing error")
				return
			}

			require.NoError(t, err, "shouldn't return any error")
			want, parseErr := decimal.NewFromString(tt.want)
			require.NoError(t, parseErr)
			assert.True(t, want.Equal(got), "should return correct value, got %s", got)
		})
	}
}

func TestUniNormalizeText(t *testing.T) {
	tests := map[string]struct {
		input string
		want  string
	}{
		"capitalizes first rune": {input: "кожа", want: "Кожа"},
		"comma becomes point":    {input: "высота 12,5 см", want: "Высота 12.5 см"},
		"already normalized":     {input: "Хлопок", want: "Хлопок"},
		"empty passes through":   {input: "", want: ""},
		"latin":                  {input: "cotton", want: "Cotton"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, fieldparse.NormalizeText(tt.input), "should return normalized text")
		})
	}
}
