package contenthash

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testHash  = Value{0x0123abcd, 0x11111111, 0x22222222, 0x33333333, 0x44444444}
	testAlign = AlignmentID{Value: Value{0xa, 0xb, 0xc, 0xd, 0xe}}
)

func TestParseHash(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    Value
		wantErr bool
	}{
		{"canonical", "0123abcd-11111111-22222222-33333333-44444444", testHash, false},
		{"trailing text ignored", "0123abcd-11111111-22222222-33333333-44444444.geom", testHash, false},
		{"upper case", "0123ABCD-11111111-22222222-33333333-44444444", testHash, false},
		{"short word", "123abcd-11111111-22222222-33333333-44444444", Value{}, true},
		{"long word", "0123abcd0-1111111-22222222-33333333-44444444", Value{}, true},
		{"last word short", "0123abcd-11111111-22222222-33333333-4444444", Value{}, true},
		{"not hex", "0123abcg-11111111-22222222-33333333-44444444", Value{}, true},
		{"empty", "", Value{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHash(tt.text)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrHashFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNameRoundTrip(t *testing.T) {
	name := FormatName(DefaultPrefix, testHash)
	assert.Equal(t, "ND280Geometry-0123abcd-11111111-22222222-33333333-44444444", name)
	assert.Len(t, name, 58)

	got, err := HashFromName(DefaultPrefix, name)
	require.NoError(t, err)
	assert.Equal(t, testHash, got)

	_, err = AlignmentFromName(DefaultPrefix, name)
	assert.ErrorIs(t, err, ErrNameFormat)

	aligned, err := SetAlignmentInName(DefaultPrefix, name, testAlign)
	require.NoError(t, err)
	assert.Equal(t, ":", aligned[58:59])
	assert.Len(t, aligned, 103)

	aid, err := AlignmentFromName(DefaultPrefix, aligned)
	require.NoError(t, err)
	assert.Equal(t, testAlign.Value, aid.Value)

	// the geometry hash survives the alignment
	got, err = HashFromName(DefaultPrefix, aligned)
	require.NoError(t, err)
	assert.Equal(t, testHash, got)

	// replacing the alignment
	other := AlignmentID{Value: Value{1, 1, 1, 1, 1}}
	realigned, err := SetAlignmentInName(DefaultPrefix, aligned, other)
	require.NoError(t, err)
	aid, err = AlignmentFromName(DefaultPrefix, realigned)
	require.NoError(t, err)
	assert.Equal(t, other.Value, aid.Value)

	// an invalid alignment erases the alignment part
	erased, err := SetAlignmentInName(DefaultPrefix, aligned, AlignmentID{})
	require.NoError(t, err)
	assert.Equal(t, name, erased)
}

func TestSetHashInName(t *testing.T) {
	assert.Equal(t, FormatName(DefaultPrefix, testHash), SetHashInName(DefaultPrefix, "t2k", testHash))

	aligned, err := SetAlignmentInName(DefaultPrefix, FormatName(DefaultPrefix, Value{9, 9, 9, 9, 9}), testAlign)
	require.NoError(t, err)
	rehashed := SetHashInName(DefaultPrefix, aligned, testHash)
	got, err := HashFromName(DefaultPrefix, rehashed)
	require.NoError(t, err)
	assert.Equal(t, testHash, got)
	aid, err := AlignmentFromName(DefaultPrefix, rehashed)
	require.NoError(t, err)
	assert.Equal(t, testAlign.Value, aid.Value)
}

func TestNameErrors(t *testing.T) {
	_, err := HashFromName(DefaultPrefix, "t2k")
	assert.ErrorIs(t, err, ErrNameFormat)
	_, err = HashFromName(DefaultPrefix, "ND280Geometry-0123abcd")
	assert.ErrorIs(t, err, ErrNameFormat)
	_, err = SetAlignmentInName(DefaultPrefix, "t2k", testAlign)
	assert.ErrorIs(t, err, ErrNameFormat)
	_, err = SetAlignmentInName(DefaultPrefix, "ND280Geometry-", testAlign)
	assert.ErrorIs(t, err, ErrNameFormat)
}

func TestHashFromFileName(t *testing.T) {
	got, err := HashFromFileName("/data/geom-" + testHash.hex() + ".geom")
	require.NoError(t, err)
	assert.Equal(t, testHash, got)

	_, err = HashFromFileName("geom-" + testHash.hex() + ".root")
	assert.ErrorIs(t, err, ErrNameFormat)
}

func TestPatterns(t *testing.T) {
	partial := Value{0x0123abcd, 0, 0, 0, 0x44444444}

	file := regexp.MustCompile(FilePattern(partial))
	assert.True(t, file.MatchString(FileName(testHash)))
	assert.True(t, file.MatchString("/some/dir/"+FileName(testHash)))
	assert.False(t, file.MatchString(FileName(Value{0x0123abcd, 0, 0, 0, 0x55555555})))
	assert.False(t, file.MatchString(FileName(testHash)+".bak"))

	name := regexp.MustCompile(NamePattern(DefaultPrefix, partial))
	assert.True(t, name.MatchString(FormatName(DefaultPrefix, testHash)))
	assert.False(t, name.MatchString("x"+FormatName(DefaultPrefix, testHash)))

	aligned, err := SetAlignmentInName(DefaultPrefix, FormatName(DefaultPrefix, testHash), testAlign)
	require.NoError(t, err)
	withAlign := regexp.MustCompile(AlignedNamePattern(DefaultPrefix, partial, AlignmentID{Value: Value{0xa}}))
	assert.True(t, withAlign.MatchString(aligned))
	assert.False(t, withAlign.MatchString(FormatName(DefaultPrefix, testHash)))
}
