package envkey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckName(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		expectErr bool
	}{
		{name: "simple name", input: "minio-local", expectErr: false},
		{name: "dotted name", input: "s3.eu-west-1", expectErr: false},
		{name: "single character", input: "a", expectErr: false},
		{name: "digits", input: "0store", expectErr: false},
		{name: "error - empty", input: "", expectErr: true},
		{name: "error - leading hyphen", input: "-minio", expectErr: true},
		{name: "error - uppercase", input: "Minio", expectErr: true},
		{name: "error - whitespace", input: "minio local", expectErr: true},
		{name: "error - slash", input: "minio/local", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckName(tc.input)

			if tc.expectErr {
				require.Error(t, err)
				var invalidName *InvalidNameError
				require.ErrorAs(t, err, &invalidName)
				assert.Equal(t, tc.input, invalidName.Name)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestKeyGrammar(t *testing.T) {
	assert.Equal(t, "STORAGE_PATH_INPUT_1", Input(1))
	assert.Equal(t, "STORAGE_PATH_OUTPUT_2", Output(2))
	assert.Equal(t, "STORAGE_PATH_SUFFIX_3", Suffix(3))
	assert.Equal(t, "STORAGE_PATH_PREFIX_4", Prefix(4))
	assert.Equal(t, "STORAGE_AUTH_MINIO_USER_1", Auth("minio", "user", 1))
	assert.Equal(t, "STORAGE_AUTH_ONEDATA_TOKEN_12", Auth("onedata", "token", 12))
}
