package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDerivationPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		want    []uint32
		wantErr bool
	}{
		{name: "root", path: "m", want: []uint32{}},
		{name: "upper root", path: "M", want: []uint32{}},
		{name: "bip44", path: "m/44'/0'/0'/0/5", want: []uint32{
			HardenedKeyStart + 44, HardenedKeyStart, HardenedKeyStart, 0, 5,
		}},
		{name: "h marker", path: "m/0h/1H", want: []uint32{HardenedKeyStart, HardenedKeyStart + 1}},
		{name: "max normal", path: "m/2147483647", want: []uint32{2147483647}},
		{name: "max hardened", path: "m/2147483647'", want: []uint32{0xffffffff}},
		{name: "empty", path: "", wantErr: true},
		{name: "no root", path: "44'/0'", wantErr: true},
		{name: "trailing slash", path: "m/0/", wantErr: true},
		{name: "index overflow", path: "m/2147483648", wantErr: true},
		{name: "negative", path: "m/-1", wantErr: true},
		{name: "plus sign", path: "m/+1", wantErr: true},
		{name: "letters", path: "m/abc", wantErr: true},
		{name: "bare marker", path: "m/'", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDerivationPath(tc.path)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestFormatDerivationPath(t *testing.T) {
	path := "m/44'/1'/0'/1/7"
	indices, err := ParseDerivationPath(path)
	require.NoError(t, err)
	require.Equal(t, path, FormatDerivationPath(indices))
	require.Equal(t, "m", FormatDerivationPath(nil))
}

func TestFormatFingerprint(t *testing.T) {
	require.Equal(t, "3442193e", FormatFingerprint(0x3442193e))
	require.Equal(t, "00000000", FormatFingerprint(0))
}
