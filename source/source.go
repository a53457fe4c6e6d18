// Package source reads LOBSTER files from places other than the working directory:
// a local directory, an S3 bucket, or an in-memory cache in front of either.
package source

import (
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	cache "github.com/patrickmn/go-cache"
	lobster "github.com/rmera/golobster"
)

// Source gives the (decompressed) text of a named LOBSTER file.
type Source interface {
	ReadText(ctx context.Context, name string) (string, error)
}

// Local reads files from a directory.
type Local struct {
	Dir string
}

// ReadText reads the file name in L.Dir, decompressing it if needed.
func (L Local) ReadText(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return lobster.ReadText(filepath.Join(L.Dir, name))
}

// GetObjectAPI is the part of the S3 client used by S3. *s3.Client implements it.
type GetObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3 reads files from an S3 bucket. The key for a name is Prefix/name.
type S3 struct {
	Client GetObjectAPI
	Bucket string
	Prefix string
}

// NewS3 returns an S3 source using the default AWS configuration (environment,
// shared files) for the given region. If endpoint is not empty, it is used instead
// of the AWS one, with path-style addressing (as needed by LocalStack or MinIO).
func NewS3(ctx context.Context, bucket, prefix, region, endpoint string) (*S3, error) {
	if bucket == "" {
		return nil, fmt.Errorf("source.NewS3: bucket is required")
	}
	opts := []func(*config.LoadOptions) error{}
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("source.NewS3: %w", err)
	}
	cli := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
	return &S3{Client: cli, Bucket: bucket, Prefix: prefix}, nil
}

// Key returns the object key for name.
func (S *S3) Key(name string) string {
	if S.Prefix == "" {
		return name
	}
	return path.Join(S.Prefix, name)
}

// ReadText downloads the object for name and returns its text, decompressed
// according to the name's extension.
func (S *S3) ReadText(ctx context.Context, name string) (string, error) {
	key := S.Key(name)
	out, err := S.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(S.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return "", fmt.Errorf("source.S3: s3://%s/%s: %w", S.Bucket, key, err)
	}
	defer out.Body.Close()
	r, err := lobster.Decompress(key, out.Body)
	if err != nil {
		return "", fmt.Errorf("source.S3: %w", err)
	}
	defer r.Close()
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("source.S3: s3://%s/%s: %w", S.Bucket, key, err)
	}
	return string(b), nil
}

// Cached keeps the text read from another source in memory, for a given time.
type Cached struct {
	Src Source
	c   *cache.Cache
}

// NewCached returns a cache in front of src. Texts expire after ttl (never, if ttl<=0).
func NewCached(src Source, ttl time.Duration) *Cached {
	if ttl <= 0 {
		ttl = cache.NoExpiration
	}
	cleanup := 2 * ttl
	if ttl == cache.NoExpiration {
		cleanup = 0
	}
	return &Cached{Src: src, c: cache.New(ttl, cleanup)}
}

// ReadText returns the cached text for name, reading it from the underlying source
// if it is not in the cache. Errors are not cached.
func (C *Cached) ReadText(ctx context.Context, name string) (string, error) {
	if t, ok := C.c.Get(name); ok {
		return t.(string), nil
	}
	t, err := C.Src.ReadText(ctx, name)
	if err != nil {
		return "", err
	}
	C.c.SetDefault(name, t)
	return t, nil
}

// Len returns the number of texts in the cache.
func (C *Cached) Len() int {
	return C.c.ItemCount()
}

// Forget removes name from the cache.
func (C *Cached) Forget(name string) {
	C.c.Delete(name)
}

// Cohpcar reads and decodes a COHPCAR (or COOPCAR) file from src. The default name
// is used if none is given.
func Cohpcar(ctx context.Context, src Source, areCoops bool, name ...string) (*lobster.Cohpcar, error) {
	n := lobster.COHPCARName
	if areCoops {
		n = lobster.COOPCARName
	}
	if len(name) > 0 && name[0] != "" {
		n = name[0]
	}
	text, err := src.ReadText(ctx, n)
	if err != nil {
		return nil, err
	}
	C, err := lobster.ParseCohpcar(text, areCoops)
	if err != nil {
		return nil, fmt.Errorf("source.Cohpcar %s: %w", n, err)
	}
	return C, nil
}

// Icohplist reads and decodes an ICOHPLIST (or ICOOPLIST) file from src. The default
// name is used if none is given.
func Icohplist(ctx context.Context, src Source, areCoops bool, name ...string) (*lobster.Icohplist, error) {
	n := lobster.ICOHPLISTName
	if areCoops {
		n = lobster.ICOOPLISTName
	}
	if len(name) > 0 && name[0] != "" {
		n = name[0]
	}
	text, err := src.ReadText(ctx, n)
	if err != nil {
		return nil, err
	}
	I, err := lobster.ParseIcohplist(text, areCoops)
	if err != nil {
		return nil, fmt.Errorf("source.Icohplist %s: %w", n, err)
	}
	return I, nil
}
