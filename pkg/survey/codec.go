package survey

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/matzehuels/renumber/pkg/errors"
)

// Decode reads a single JSON document from r.
//
// Object members keep their document order. When a key repeats within one
// object, the last value wins and keeps the position of the first
// occurrence. Anything other than whitespace after the top-level value is
// an error, as is input that is not valid UTF-8. Errors carry
// [errors.ErrCodeInvalidDocument].
func Decode(r io.Reader) (Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Value{}, errors.Wrap(errors.ErrCodeInvalidDocument, err, "read document")
	}
	return Parse(data)
}

// Parse decodes a JSON document held in data. See [Decode].
func Parse(data []byte) (Value, error) {
	// encoding/json replaces invalid bytes with U+FFFD, which would be
	// written back over the original text.
	if !utf8.Valid(data) {
		return Value{}, errors.New(errors.ErrCodeInvalidDocument, "decode document: invalid UTF-8")
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return Value{}, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode document")
	}
	if tok, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = fmt.Errorf("unexpected %v after top-level value", tok)
		}
		return Value{}, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode document")
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err == io.EOF {
		return Value{}, io.ErrUnexpectedEOF
	}
	if err != nil {
		return Value{}, err
	}

	switch t := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case json.Number:
		return Number(t), nil
	case json.Delim:
		switch t {
		case '[':
			return decodeArray(dec)
		case '{':
			return decodeObject(dec)
		}
	}
	return Value{}, fmt.Errorf("unexpected token %v", tok)
}

func decodeArray(dec *json.Decoder) (Value, error) {
	arr := Array{}
	for dec.More() {
		v, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}
		arr = append(arr, v)
	}
	if err := closeDelim(dec, ']'); err != nil {
		return Value{}, err
	}
	return NewArray(arr...), nil
}

func decodeObject(dec *json.Decoder) (Value, error) {
	obj := Object{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		key, ok := tok.(string)
		if !ok {
			return Value{}, fmt.Errorf("unexpected object key %v", tok)
		}
		v, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}
		if !obj.Set(key, v) {
			obj = append(obj, Member{Key: key, Value: v})
		}
	}
	if err := closeDelim(dec, '}'); err != nil {
		return Value{}, err
	}
	return NewObject(obj...), nil
}

func closeDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %v, got %v", want, tok)
	}
	return nil
}

// Marshal encodes v as a JSON document terminated by a newline.
//
// With indent > 0, every array element and object member goes on its own
// line, nested indent spaces deeper than its parent, and keys are followed
// by ": ". Empty arrays and objects stay on one line. With indent == 0 the
// output is compact. Strings are written with their non-ASCII and HTML
// characters as-is rather than as \u escapes.
func Marshal(v Value, indent int) ([]byte, error) {
	if indent < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "negative indent %d", indent)
	}
	var buf bytes.Buffer
	e := &encoder{buf: &buf, indent: strings.Repeat(" ", indent)}
	if err := e.value(v, 0); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Encode writes v to w as a JSON document. See [Marshal].
func (v Value) Encode(w io.Writer, indent int) error {
	data, err := Marshal(v, indent)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

type encoder struct {
	buf     *bytes.Buffer
	indent  string
	scratch bytes.Buffer
}

func (e *encoder) value(v Value, depth int) error {
	switch v.kind {
	case KindNull:
		e.buf.WriteString("null")
	case KindBool:
		if v.b {
			e.buf.WriteString("true")
		} else {
			e.buf.WriteString("false")
		}
	case KindNumber:
		if !isNumberLiteral(v.s) {
			return errors.New(errors.ErrCodeInternal, "invalid number literal %q", v.s)
		}
		e.buf.WriteString(v.s)
	case KindString:
		return e.str(v.s)
	case KindArray:
		if len(v.arr) == 0 {
			e.buf.WriteString("[]")
			return nil
		}
		e.buf.WriteByte('[')
		for i, elem := range v.arr {
			if i > 0 {
				e.buf.WriteByte(',')
			}
			e.newline(depth + 1)
			if err := e.value(elem, depth+1); err != nil {
				return err
			}
		}
		e.newline(depth)
		e.buf.WriteByte(']')
	case KindObject:
		if len(v.obj) == 0 {
			e.buf.WriteString("{}")
			return nil
		}
		e.buf.WriteByte('{')
		for i, m := range v.obj {
			if i > 0 {
				e.buf.WriteByte(',')
			}
			e.newline(depth + 1)
			if err := e.str(m.Key); err != nil {
				return err
			}
			e.buf.WriteByte(':')
			if e.indent != "" {
				e.buf.WriteByte(' ')
			}
			if err := e.value(m.Value, depth+1); err != nil {
				return err
			}
		}
		e.newline(depth)
		e.buf.WriteByte('}')
	default:
		return errors.New(errors.ErrCodeInternal, "unknown value kind %v", v.kind)
	}
	return nil
}

func (e *encoder) newline(depth int) {
	if e.indent == "" {
		return
	}
	e.buf.WriteByte('\n')
	for i := 0; i < depth; i++ {
		e.buf.WriteString(e.indent)
	}
}

func (e *encoder) str(s string) error {
	e.scratch.Reset()
	enc := json.NewEncoder(&e.scratch)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode string")
	}
	// json.Encoder terminates each value with a newline.
	writeLineSeparators(e.buf, bytes.TrimSuffix(e.scratch.Bytes(), []byte("\n")))
	return nil
}

// writeLineSeparators copies an encoded JSON string to buf, turning the
// \u2028 and \u2029 escapes that json.Encoder always emits back into the
// characters themselves. Escaped backslashes are copied as they are.
func writeLineSeparators(buf *bytes.Buffer, quoted []byte) {
	for i := 0; i < len(quoted); i++ {
		c := quoted[i]
		if c != '\\' || i+1 == len(quoted) {
			buf.WriteByte(c)
			continue
		}
		switch rest := quoted[i:]; {
		case bytes.HasPrefix(rest, []byte(`\u2028`)):
			buf.WriteRune('\u2028')
			i += 5
		case bytes.HasPrefix(rest, []byte(`\u2029`)):
			buf.WriteRune('\u2029')
			i += 5
		default:
			buf.WriteByte(c)
			buf.WriteByte(quoted[i+1])
			i++
		}
	}
}

func isNumberLiteral(s string) bool {
	if s == "" || (s[0] != '-' && (s[0] < '0' || s[0] > '9')) {
		return false
	}
	return json.Valid([]byte(s))
}
