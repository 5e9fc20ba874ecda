package filesystem

import (
	"bytes"
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

type memoryBucket struct {
	objects     map[string][]byte
	contentType map[string]string
}

func newMemoryBucket() *memoryBucket {
	return &memoryBucket{objects: map[string][]byte{}, contentType: map[string]string{}}
}

func (m *memoryBucket) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	b, ok := m.objects[aws.ToString(params.Bucket)+"/"+aws.ToString(params.Key)]
	if !ok {
		return nil, errors.New("NoSuchKey")
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(b))}, nil
}

func (m *memoryBucket) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	b, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	name := aws.ToString(params.Bucket) + "/" + aws.ToString(params.Key)
	m.objects[name] = b
	m.contentType[name] = aws.ToString(params.ContentType)
	return &s3.PutObjectOutput{}, nil
}

func TestParseURI(t *testing.T) {
	tests := []struct {
		uri     string
		bucket  string
		key     string
		wantErr bool
	}{
		{uri: "s3://hr-exports/2024/roster.xlsx", bucket: "hr-exports", key: "2024/roster.xlsx"},
		{uri: "s3://bucket", wantErr: true},
		{uri: "s3:///key", wantErr: true},
		{uri: "/tmp/roster.xlsx", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			bucket, key, err := ParseURI(tt.uri)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.bucket, bucket)
			assert.Equal(t, tt.key, key)
		})
	}

	assert.True(t, IsS3URI("s3://b/k"))
	assert.False(t, IsS3URI("roster.csv"))
}

func TestReadWriteFile(t *testing.T) {
	bucket := newMemoryBucket()
	fs := NewS3(bucket)
	ctx := context.Background()

	require.NoError(t, fs.WriteFile(ctx, "s3://hr/employees.csv", strings.NewReader("full_name\n"), "text/csv"))
	assert.Equal(t, "text/csv", bucket.contentType["hr/employees.csv"])

	var out bytes.Buffer
	require.NoError(t, fs.ReadFile(ctx, "s3://hr/employees.csv", &out))
	assert.Equal(t, "full_name\n", out.String())

	err := fs.ReadFile(ctx, "s3://hr/missing.csv", &out)
	assert.ErrorContains(t, err, "failed to get object missing.csv from bucket hr")
}
