package s3

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3Client struct {
	input *s3.PutObjectInput
	body  string
	err   error
}

func (f *fakeS3Client) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = params
	body, _ := io.ReadAll(params.Body)
	f.body = string(body)
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{ETag: aws.String(`"etag"`)}, nil
}

func TestPutFile(t *testing.T) {
	fake := &fakeS3Client{}
	client := &Client{client: fake}

	err := client.PutFile(context.Background(), strings.NewReader("id,name\n"), "bucket", "pokemons/1_2.csv", "text/csv")

	require.NoError(t, err)
	assert.Equal(t, "bucket", aws.ToString(fake.input.Bucket))
	assert.Equal(t, "pokemons/1_2.csv", aws.ToString(fake.input.Key))
	assert.Equal(t, "text/csv", aws.ToString(fake.input.ContentType))
	assert.Equal(t, "id,name\n", fake.body)
}

func TestPutFileError(t *testing.T) {
	boom := errors.New("access denied")
	client := &Client{client: &fakeS3Client{err: boom}}

	err := client.PutFile(context.Background(), strings.NewReader(""), "bucket", "key", "text/csv")

	assert.ErrorIs(t, err, boom)
}
