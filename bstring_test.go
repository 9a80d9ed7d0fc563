package bytestring

import (
	"bytes"
	"errors"
	"testing"
)

func TestNewBStringCopies(t *testing.T) {
	src := []byte("hello")
	s := NewBString(src)

	src[0] = 'X'
	if got := s.String(); got != "hello" {
		t.Fatalf("buffer after operand write = %q, want %q", got, "hello")
	}
}

func TestBStringZeroValue(t *testing.T) {
	var s BString
	if s.Len() != 0 {
		t.Fatalf("zero value Len = %d, want 0", s.Len())
	}
	s.AppendString("ok")
	if got := s.String(); got != "ok" {
		t.Fatalf("zero value after append = %q, want %q", got, "ok")
	}
}

func TestBStringAppend(t *testing.T) {
	s := NewBString("a")
	s.Append([]byte{0xFF})
	s.AppendByte('b')
	s.AppendRune('界')
	s.AppendString("!")

	want := append([]byte("a"), 0xFF)
	want = append(want, 'b')
	want = append(want, []byte("界!")...)
	if !bytes.Equal(s.Bytes(), want) {
		t.Fatalf("buffer = %x, want %x", s.Bytes(), want)
	}
	if got := s.String(); got != "a�b界!" {
		t.Fatalf("String = %q, want %q", got, "a�b界!")
	}
}

func TestBStringGrow(t *testing.T) {
	s := NewBString("abc")
	s.Grow(64)
	if free := s.Cap() - s.Len(); free < 64 {
		t.Fatalf("free capacity after Grow = %d, want >= 64", free)
	}
	if got := s.String(); got != "abc" {
		t.Fatalf("contents after Grow = %q, want %q", got, "abc")
	}

	defer func() {
		if recover() == nil {
			t.Fatal("negative Grow did not panic")
		}
	}()
	s.Grow(-1)
}

func TestBStringTruncateReset(t *testing.T) {
	s := NewBString("abcdef")
	s.Truncate(3)
	if got := s.String(); got != "abc" {
		t.Fatalf("after Truncate = %q, want %q", got, "abc")
	}

	c := s.Cap()
	s.Reset()
	if s.Len() != 0 {
		t.Fatalf("Len after Reset = %d, want 0", s.Len())
	}
	if s.Cap() != c {
		t.Fatalf("Cap after Reset = %d, want %d (storage retained)", s.Cap(), c)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("out-of-range Truncate did not panic")
		}
	}()
	s.Truncate(1)
}

func TestBStrProjectionAliases(t *testing.T) {
	s := NewBString("hello")
	v := s.BStr()

	v[0] = 'H'
	if got := s.String(); got != "Hello" {
		t.Fatalf("buffer after view write = %q, want %q", got, "Hello")
	}
	if &v[0] != &s.Bytes()[0] {
		t.Fatal("projection does not share storage with the buffer")
	}
}

func TestBStringToUTF8(t *testing.T) {
	got, err := NewBString("text").ToUTF8()
	if err != nil {
		t.Fatalf("ToUTF8 failed: %v", err)
	}
	if got != "text" {
		t.Fatalf("ToUTF8 = %q, want %q", got, "text")
	}

	_, err = NewBString([]byte{'a', 0x80}).ToUTF8()
	var ue *UTF8Error
	if !errors.As(err, &ue) {
		t.Fatalf("error type = %T, want *UTF8Error", err)
	}
	if ue.Offset != 1 {
		t.Fatalf("offset = %d, want 1", ue.Offset)
	}
}

func TestBStringClone(t *testing.T) {
	s := NewBString("abc")
	c := s.Clone()
	s.AppendString("def")

	if got := c.String(); got != "abc" {
		t.Fatalf("clone after original mutation = %q, want %q", got, "abc")
	}
	if !c.EqualTo(NewBString("abc")) {
		t.Fatal("EqualTo on identical contents = false, want true")
	}
}

func TestBStringCompareHash(t *testing.T) {
	a := NewBString("aa")
	b := NewBString("ab")

	if got := a.Compare(b); got != -1 {
		t.Fatalf("Compare = %d, want -1", got)
	}
	if a.Hash() != NewBString("aa").Hash() {
		t.Fatal("hash differs for identical buffers")
	}
	if a.Hash() != a.BStr().Hash() {
		t.Fatal("buffer hash differs from projection hash")
	}
}

func TestBStringRendering(t *testing.T) {
	s := NewBString([]byte{'a', 0xFF, 'b'})

	if got, want := s.Debug(), `"a\xffb"`; got != want {
		t.Fatalf("Debug = %s, want %s", got, want)
	}
	if got, want := s.String(), "a�b"; got != want {
		t.Fatalf("String = %q, want %q", got, want)
	}

	var sb bytes.Buffer
	if err := s.WriteDisplay(&sb, Options{Align: AlignCenter, Width: 7, Fill: '*'}); err != nil {
		t.Fatalf("WriteDisplay failed: %v", err)
	}
	if got, want := sb.String(), "**a�b**"; got != want {
		t.Fatalf("padded display = %q, want %q", got, want)
	}
}
