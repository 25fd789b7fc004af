package envfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender_SortedAndTerminated(t *testing.T) {
	out := Render(map[string]string{
		"STORAGE_PATH_OUTPUT_1":     "my-bucket/test-output",
		"STORAGE_AUTH_MINIO_USER_1": "muser",
		"STORAGE_PATH_INPUT_1":      "my-bucket/test",
	})

	want := "STORAGE_AUTH_MINIO_USER_1=muser\n" +
		"STORAGE_PATH_INPUT_1=my-bucket/test\n" +
		"STORAGE_PATH_OUTPUT_1=my-bucket/test-output\n"
	assert.Equal(t, want, out)
}

func TestRender_QuotesAwkwardValues(t *testing.T) {
	out := Render(map[string]string{
		"A": "plain",
		"B": "has space",
		"C": "has#hash",
	})

	assert.Equal(t, "A=plain\nB=\"has space\"\nC=\"has#hash\"\n", out)
}

func TestRender_Empty(t *testing.T) {
	assert.Equal(t, "", Render(nil))
}
