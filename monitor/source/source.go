package source

import (
	"bufio"
	"context"
	"io"
	"io/ioutil"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/mason-leap-lab/go-utils/logger"
	"github.com/pkg/errors"
)

// MaxLineSize bounds the length of one input line. Longer lines end the scan
// with bufio.ErrTooLong.
const MaxLineSize = 1024 * 1024

var (
	ErrMalformed = errors.New("malformed sample")
)

// Handler receives every parsed sample.
type Handler func(name string, val float64) error

// Open opens the input named by uri: "-" for stdin, s3://bucket/key for an
// S3 object, or a local file path.
func Open(ctx context.Context, uri string, region string) (io.ReadCloser, error) {
	if uri == "" || uri == "-" {
		return ioutil.NopCloser(os.Stdin), nil
	}
	if bucket, key, ok := ParseS3URI(uri); ok {
		return OpenS3(ctx, region, bucket, key)
	}
	file, err := os.Open(uri)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", uri)
	}
	return file, nil
}

// Parse parses a line formatted as "value", "name value", or "name,value".
// Blank lines and lines starting with '#' are skipped with ok == false.
// A bare value is named by def. NaN and infinite values are malformed.
func Parse(line string, def string) (name string, val float64, ok bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || line[0] == '#' {
		return "", 0, false, nil
	}

	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	switch len(fields) {
	case 1:
		name = def
	case 2:
		name = fields[0]
	default:
		return "", 0, false, errors.Wrapf(ErrMalformed, "unexpected fields in %q", line)
	}

	val, err = strconv.ParseFloat(fields[len(fields)-1], 64)
	if err != nil {
		return "", 0, false, errors.Wrapf(ErrMalformed, "invalid value in %q", line)
	} else if math.IsNaN(val) || math.IsInf(val, 0) {
		return "", 0, false, errors.Wrapf(ErrMalformed, "non-finite value in %q", line)
	}
	return name, val, true, nil
}

// Scanner feeds samples read line by line into a Handler.
type Scanner struct {
	Log     logger.Logger
	Default string

	// Skipped counts malformed lines.
	Skipped int
}

// Scan reads r until EOF, cancellation of ctx, or an error of the handler.
// Malformed lines are logged and skipped. Scan returns the number of samples handled.
func (s *Scanner) Scan(ctx context.Context, r io.Reader, handler Handler) (int, error) {
	log := s.Log
	if log == nil {
		log = logger.NilLogger
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), MaxLineSize)
	n := 0
	for line := 1; scanner.Scan(); line++ {
		select {
		case <-ctx.Done():
			return n, ctx.Err()
		default:
		}

		name, val, ok, err := Parse(scanner.Text(), s.Default)
		if err != nil {
			s.Skipped++
			log.Warn("Skip line %d: %v", line, err)
			continue
		} else if !ok {
			continue
		}

		if err := handler(name, val); err != nil {
			return n, err
		}
		n++
	}
	return n, scanner.Err()
}
