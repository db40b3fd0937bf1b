package shortener

import (
	"math/rand/v2"
	"strconv"

	"github.com/sqids/sqids-go"
)

const (
	Alphabet      = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	DefaultLength = 7
)

// Generator draws random codes from Alphabet. It is safe for concurrent use.
// Codes are labels, not secrets, so math/rand is sufficient.
type Generator struct {
	length int
	intN   func(n int) int
}

func NewGenerator(length int) *Generator {
	if length <= 0 {
		length = DefaultLength
	}
	return &Generator{length: length, intN: rand.IntN}
}

// NewGeneratorWithSource is NewGenerator with a caller-provided index source.
// intN must return a value in [0, n).
func NewGeneratorWithSource(length int, intN func(n int) int) *Generator {
	g := NewGenerator(length)
	g.intN = intN
	return g
}

func (g *Generator) Generate() string {
	buf := make([]byte, g.length)
	for i := range buf {
		buf[i] = Alphabet[g.intN(len(Alphabet))]
	}
	return string(buf)
}

// IDEncoder turns storage row ids into the opaque ids shown to clients.
type IDEncoder struct {
	sqids *sqids.Sqids
}

func NewIDEncoder() (*IDEncoder, error) {
	s, err := sqids.New(sqids.Options{
		MinLength: 6,
	})
	if err != nil {
		return nil, err
	}
	return &IDEncoder{sqids: s}, nil
}

func (e *IDEncoder) Encode(id int64) string {
	if id < 0 {
		return strconv.FormatInt(id, 10)
	}
	encoded, err := e.sqids.Encode([]uint64{uint64(id)})
	if err != nil {
		return strconv.FormatInt(id, 10)
	}
	return encoded
}
