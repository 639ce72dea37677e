package source

import (
	"bytes"
	"context"
	"io"
	"io/ioutil"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/pkg/errors"
)

const s3Scheme = "s3://"

// ParseS3URI splits s3://bucket/key.
func ParseS3URI(uri string) (bucket string, key string, ok bool) {
	if !strings.HasPrefix(uri, s3Scheme) {
		return "", "", false
	}
	path := strings.TrimPrefix(uri, s3Scheme)
	slash := strings.IndexByte(path, '/')
	if slash <= 0 || slash == len(path)-1 {
		return "", "", false
	}
	return path[:slash], path[slash+1:], true
}

// OpenS3 downloads the object into memory and returns a reader over it.
func OpenS3(ctx context.Context, region string, bucket string, key string) (io.ReadCloser, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create aws session")
	}

	buffer := aws.NewWriteAtBuffer([]byte{})
	downloader := s3manager.NewDownloader(sess)
	if _, err := downloader.DownloadWithContext(ctx, buffer, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}); err != nil {
		return nil, errors.Wrapf(err, "failed to download s3://%s/%s", bucket, key)
	}
	return ioutil.NopCloser(bytes.NewReader(buffer.Bytes())), nil
}
