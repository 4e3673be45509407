package report

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"hash"
	"io"

	"golang.org/x/crypto/blake2b"
)

// ErrDigestMismatch is returned by Verify when a report was altered.
var ErrDigestMismatch = errors.New("report digest mismatch")

// chainKey separates report digests from any other BLAKE2b use.
var chainKey = []byte("adms.audit-report.v1")

const maxLineSize = 1 << 20

// chain computes digest_n = BLAKE2b-256(key, digest_{n-1} || line_n), where
// line_n is the line's JSON encoding with an empty Digest.
type chain struct {
	h    hash.Hash
	prev []byte
}

func newChain() *chain {
	h, err := blake2b.New256(chainKey)
	if err != nil {
		panic(fmt.Sprintf("report: blake2b key: %v", err))
	}
	return &chain{h: h, prev: make([]byte, blake2b.Size256)}
}

// seal stamps line with the next digest and returns its final encoding.
func (c *chain) seal(line *Line) ([]byte, error) {
	line.Digest = ""
	canonical, err := json.Marshal(line)
	if err != nil {
		return nil, fmt.Errorf("encode report line %d: %w", line.Seq, err)
	}

	c.h.Reset()
	c.h.Write(c.prev)
	c.h.Write(canonical)
	c.prev = c.h.Sum(nil)

	line.Digest = hex.EncodeToString(c.prev)
	return json.Marshal(line)
}

func (c *chain) digest() string {
	return hex.EncodeToString(c.prev)
}

// Verify recomputes the digest chain of a report and checks that it ends
// with a trailer counting every preceding line. Every line must be stored
// byte for byte as it was written.
func Verify(r io.Reader) (Summary, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	c := newChain()
	var last Line
	n := 0
	for sc.Scan() {
		n++
		var line Line
		if err := json.Unmarshal(sc.Bytes(), &line); err != nil {
			return Summary{}, fmt.Errorf("line %d: %w: %w", n, ErrDigestMismatch, err)
		}
		if line.Seq != n {
			return Summary{}, fmt.Errorf("line %d: seq %d: %w", n, line.Seq, ErrDigestMismatch)
		}
		if last.Kind == KindTrailer {
			return Summary{}, fmt.Errorf("line %d after trailer: %w", n, ErrDigestMismatch)
		}

		claimed := line.Digest
		sealed, err := c.seal(&line)
		if err != nil {
			return Summary{}, err
		}
		if line.Digest != claimed {
			return Summary{}, fmt.Errorf("line %d: %w", n, ErrDigestMismatch)
		}
		// The digest covers the decoded line, so the stored bytes must be
		// exactly its encoding: no extra, duplicate or reordered keys.
		if !bytes.Equal(sealed, sc.Bytes()) {
			return Summary{}, fmt.Errorf("line %d: non-canonical encoding: %w", n, ErrDigestMismatch)
		}
		last = line
	}
	if err := sc.Err(); err != nil {
		return Summary{}, fmt.Errorf("read report: %w", err)
	}

	if last.Kind != KindTrailer || last.Lines != n-1 {
		return Summary{}, fmt.Errorf("missing or short trailer: %w", ErrDigestMismatch)
	}
	return Summary{Lines: n, Digest: c.digest()}, nil
}
