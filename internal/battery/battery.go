package battery

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"fortio.org/safecast"

	"github.com/joshuapare/bitkit/internal/logger"
	"github.com/joshuapare/bitkit/pkg/bits"
)

// Kind names the operation a case exercises.
type Kind string

const (
	KindBinary       Kind = "bin"
	KindSignedBinary Kind = "sbin"
	KindHex          Kind = "hex"
	KindBit          Kind = "bit"
	KindField        Kind = "field"
	KindDump         Kind = "dump"
)

// Kinds lists every valid kind in display order.
var Kinds = []Kind{KindBinary, KindSignedBinary, KindHex, KindBit, KindField, KindDump}

// Valid reports whether k names an operation.
func (k Kind) Valid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// numeric reports whether the kind produces a value rather than text.
func (k Kind) numeric() bool {
	return k == KindBit || k == KindField
}

// Case is a single check. Integer fields are wide so that out-of-range
// inputs can be expressed; they are narrowed when the case runs.
type Case struct {
	Name  string `toml:"name" json:"name"`
	Kind  Kind   `toml:"kind" json:"kind"`
	Value int64  `toml:"value" json:"value"`
	Width int64  `toml:"width" json:"width,omitempty"`
	Bit   int64  `toml:"bit" json:"bit,omitempty"`
	Start int64  `toml:"start" json:"start,omitempty"`
	Op    string `toml:"op" json:"op,omitempty"`

	// Bits is the field length for KindField; 0 selects three bits.
	Bits int64 `toml:"bits" json:"bits,omitempty"`

	// Data holds the dump input as hex digits; whitespace is ignored.
	Data string `toml:"data" json:"data,omitempty"`

	// Capacity is the output buffer size; 0 selects exactly enough room.
	Capacity int64 `toml:"capacity" json:"capacity,omitempty"`

	Want      string `toml:"want" json:"want,omitempty"`
	WantValue int64  `toml:"want_value" json:"want_value,omitempty"`
	WantErr   string `toml:"want_err" json:"want_err,omitempty"`
}

// Expected renders what the case expects: an error name, a decimal value,
// or text.
func (c Case) Expected() string {
	switch {
	case c.WantErr != "":
		return "error " + c.WantErr
	case c.Kind.numeric():
		return strconv.FormatInt(c.WantValue, 10)
	default:
		return c.Want
	}
}

// Validate checks that the case is well formed without running it.
func (c Case) Validate() error {
	if !c.Kind.Valid() {
		return fmt.Errorf("case %q: kind %q: %w", c.Name, c.Kind, ErrUnknownKind)
	}
	if c.WantErr != "" && !knownErrorName(c.WantErr) {
		return fmt.Errorf("case %q: want_err %q: %w", c.Name, c.WantErr, ErrBadCase)
	}
	if c.Capacity < 0 {
		return fmt.Errorf("case %q: negative capacity: %w", c.Name, ErrBadCase)
	}
	return nil
}

// Result is the outcome of one case.
type Result struct {
	Case Case   `json:"case"`
	Got  string `json:"got"`
	Err  error  `json:"-"`
	Pass bool   `json:"pass"`
}

// ErrName returns the stable name of the error the case produced, if any.
func (r Result) ErrName() string {
	return ErrorName(r.Err)
}

// Report collects the results of a run.
type Report struct {
	Results []Result
}

// Passed returns the number of passing cases.
func (r Report) Passed() int {
	n := 0
	for _, res := range r.Results {
		if res.Pass {
			n++
		}
	}
	return n
}

// Failed returns the number of failing cases.
func (r Report) Failed() int {
	return len(r.Results) - r.Passed()
}

// OK reports whether every case passed.
func (r Report) OK() bool {
	return r.Failed() == 0
}

// Run evaluates cases in order.
func Run(cases []Case) Report {
	report := Report{Results: make([]Result, 0, len(cases))}
	for _, c := range cases {
		res := Evaluate(c)
		if res.Pass {
			logger.Debug("case passed", "name", c.Name, "kind", string(c.Kind), "got", res.Got)
		} else {
			logger.Warn("case failed", "name", c.Name, "kind", string(c.Kind),
				"want", c.Expected(), "got", res.Got, "err", res.Err)
		}
		report.Results = append(report.Results, res)
	}
	logger.Info("battery finished", "passed", report.Passed(), "failed", report.Failed())
	return report
}

// Evaluate runs a single case.
func Evaluate(c Case) Result {
	if err := c.Validate(); err != nil {
		return Result{Case: c, Err: err}
	}
	got, err := c.exec()
	res := Result{Case: c, Got: got, Err: err}
	switch {
	case c.WantErr != "":
		res.Pass = ErrorName(err) == c.WantErr
	case err == nil:
		res.Pass = got == c.Expected()
	}
	return res
}

func (c Case) exec() (string, error) {
	switch c.Kind {
	case KindBinary:
		v, err := narrow[uint32](c, "value", c.Value)
		if err != nil {
			return "", err
		}
		return c.format(bits.BinarySize, func(w bits.Width, out *bits.Buffer) (int, error) {
			return bits.FormatUnsignedBinary(v, w, out)
		})
	case KindSignedBinary:
		v, err := narrow[int32](c, "value", c.Value)
		if err != nil {
			return "", err
		}
		return c.format(bits.BinarySize, func(w bits.Width, out *bits.Buffer) (int, error) {
			return bits.FormatSignedBinary(v, w, out)
		})
	case KindHex:
		v, err := narrow[uint32](c, "value", c.Value)
		if err != nil {
			return "", err
		}
		return c.format(bits.HexSize, func(w bits.Width, out *bits.Buffer) (int, error) {
			return bits.FormatUnsignedHex(v, w, out)
		})
	case KindBit:
		return c.twiddle()
	case KindField:
		return c.field()
	case KindDump:
		return c.dump()
	}
	return "", fmt.Errorf("case %q: kind %q: %w", c.Name, c.Kind, ErrUnknownKind)
}

func (c Case) format(size func(bits.Width) int, fn func(bits.Width, *bits.Buffer) (int, error)) (string, error) {
	w, err := narrow[uint8](c, "width", c.Width)
	if err != nil {
		return "", err
	}
	width := bits.Width(w)
	out := bits.NewBuffer(c.capacity(size(width)))
	n, err := fn(width, out)
	if err != nil {
		return out.String(), err
	}
	if n != out.Len() {
		return out.String(), fmt.Errorf("case %q: reported %d characters, wrote %d: %w",
			c.Name, n, out.Len(), ErrBadCase)
	}
	return out.String(), nil
}

func (c Case) twiddle() (string, error) {
	v, err := narrow[uint32](c, "value", c.Value)
	if err != nil {
		return "", err
	}
	bit, err := narrow[int](c, "bit", c.Bit)
	if err != nil {
		return "", err
	}
	op, err := bits.ParseOperation(c.Op)
	if err != nil {
		return "", err
	}
	got, err := bits.TwiddleBit(v, bit, op)
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(uint64(got), 10), nil
}

func (c Case) field() (string, error) {
	v, err := narrow[uint32](c, "value", c.Value)
	if err != nil {
		return "", err
	}
	start, err := narrow[int](c, "start", c.Start)
	if err != nil {
		return "", err
	}
	var got uint32
	if c.Bits == 0 {
		got, err = bits.ExtractThreeBits(v, start)
	} else {
		n, nerr := narrow[int](c, "bits", c.Bits)
		if nerr != nil {
			return "", nerr
		}
		got, err = bits.ExtractField(v, start, n)
	}
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(uint64(got), 10), nil
}

func (c Case) dump() (string, error) {
	data, err := hex.DecodeString(strings.Join(strings.Fields(c.Data), ""))
	if err != nil {
		return "", fmt.Errorf("case %q: data: %v: %w", c.Name, err, ErrBadCase)
	}
	size, err := bits.HexDumpSize(len(data))
	if err != nil {
		return "", err
	}
	out, err := bits.HexDump(data, bits.NewBuffer(c.capacity(size)))
	return out.String(), err
}

// capacity returns the buffer size for output of length n.
func (c Case) capacity(n int) int {
	if c.Capacity == 0 {
		return n + 1
	}
	if capacity, err := safecast.Conv[int](c.Capacity); err == nil {
		return capacity
	}
	return n + 1
}

func narrow[T safecast.Integer](c Case, field string, v int64) (T, error) {
	out, err := safecast.Conv[T](v)
	if err != nil {
		return out, fmt.Errorf("case %q: %s %d: %v: %w", c.Name, field, v, err, ErrBadCase)
	}
	return out, nil
}
