package storage

import (
	"bytes"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
)

// S3Storage uploads to an S3-compatible bucket with public-read objects.
type S3Storage struct {
	Bucket    string
	Folder    string
	PublicURL string

	client *s3.S3
}

func NewS3Storage(region, endpoint, accessKey, secretKey, bucket, folder, publicURL string) (*S3Storage, error) {
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String(region),
		Endpoint: aws.String(endpoint),
		Credentials: credentials.NewStaticCredentials(
			accessKey, secretKey, "",
		),
	})
	if err != nil {
		return nil, err
	}
	return &S3Storage{
		Bucket:    bucket,
		Folder:    folder,
		PublicURL: publicURL,
		client:    s3.New(sess),
	}, nil
}

func (s *S3Storage) Save(data []byte, filename, contentType string) (string, error) {
	key := fmt.Sprintf("%s/%s-%s", s.Folder, uuid.NewString(), filename)

	_, err := s.client.PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(s.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return "", fmt.Errorf("unable to upload file to S3: %v", err)
	}

	return fmt.Sprintf("%s/%s", s.PublicURL, key), nil
}
