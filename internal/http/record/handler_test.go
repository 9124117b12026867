package record

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saveRequest(t *testing.T, overrides map[string]string) *http.Request {
	t.Helper()

	form := url.Values{
		"cliente_unico":    {"C001"},
		"tipo_convenio_id": {"1"},
		"boca_cobranza_id": {"2"},
	}

	for k, v := range overrides {
		form.Set(k, v)
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return req
}

func TestParseSaveParams_DurationBounds(t *testing.T) {
	tests := []struct {
		name     string
		duration string
		want     *int
		wantErr  bool
	}{
		{name: "one week", duration: "1", want: new(1)},
		{name: "full year", duration: "52", want: new(52)},
		{name: "zero rejected", duration: "0", wantErr: true},
		{name: "negative rejected", duration: "-1", wantErr: true},
		{name: "not a number", duration: "abc", wantErr: true},
		{name: "blank means unset", duration: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := parseSaveParams(saveRequest(t, map[string]string{"duracion": tt.duration}))

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, p.DurationWeeks)
		})
	}
}

func TestParseSaveParams_CatalogIDsRequired(t *testing.T) {
	_, err := parseSaveParams(saveRequest(t, map[string]string{"tipo_convenio_id": ""}))
	assert.Error(t, err)

	_, err = parseSaveParams(saveRequest(t, map[string]string{"boca_cobranza_id": ""}))
	assert.Error(t, err)
}

func TestParseSaveParams_PromiseDateFormat(t *testing.T) {
	p, err := parseSaveParams(saveRequest(t, map[string]string{"fecha_promesa": "2026-08-31"}))
	require.NoError(t, err)
	require.NotNil(t, p.PromiseDate)
	assert.Equal(t, "2026-08-31", p.PromiseDate.Format("2006-01-02"))

	_, err = parseSaveParams(saveRequest(t, map[string]string{"fecha_promesa": "31/08/2026"}))
	assert.Error(t, err)
}
