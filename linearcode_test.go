package linearcode

import (
	"fmt"
	"testing"

	expect "github.com/intel/rsp-sw-toolkit-im-suite-expect"
	"github.com/intel/rsp-sw-toolkit-im-suite-linearcode/ean"
	"github.com/intel/rsp-sw-toolkit-im-suite-linearcode/symbol"
	"github.com/intel/rsp-sw-toolkit-im-suite-linearcode/twooffive"
	"github.com/pkg/errors"
)

func TestDecode(t *testing.T) {
	w := expect.WrapT(t)

	ean13 := w.ShouldHaveResult(ean.NewEAN13("788408851633", symbol.Options{})).(*ean.EAN13)
	upca := w.ShouldHaveResult(ean.NewUPCA("88408851633", symbol.Options{})).(*ean.UPCA)
	ean8 := w.ShouldHaveResult(ean.NewEAN8("9638507", symbol.Options{})).(*ean.EAN8)
	itf := w.ShouldHaveResult(twooffive.NewInterleaved("123", symbol.Options{})).(*twooffive.Interleaved)
	matrix := w.ShouldHaveResult(twooffive.NewMatrix("1234", symbol.Options{})).(*twooffive.Matrix)

	type decodeTest struct {
		name   string
		in     string
		value  string
		asType interface{}
	}

	matrixWN := w.ShouldHaveResult(matrix.WN()).(string)
	for i, tt := range []decodeTest{
		{"ean13 bars", ean13.Bars(), "788408851633", &ean.EAN13{}},
		{"ean13 rle", ean13.RLE(), "788408851633", &ean.EAN13{}},
		{"upca bars", upca.Bars(), "88408851633", &ean.UPCA{}},
		{"ean8 bars", ean8.Bars(), "9638507", &ean.EAN8{}},
		{"interleaved bars", itf.Bars(), "123", &twooffive.Interleaved{}},
		{"matrix wn", matrixWN, "1234", &twooffive.Matrix{}},
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.name), func(t *testing.T) {
			w := expect.WrapT(t)
			sym := w.As(tt.in).StopOnMismatch().ShouldHaveResult(Decode(tt.in, symbol.Options{})).(Symbol)
			w.ShouldBeEqual(sym.Value(), tt.value)
			w.ShouldBeEqual(fmt.Sprintf("%T", sym), fmt.Sprintf("%T", tt.asType))
		})
	}
}

func TestDecode_zeroNumberSystemIsUPCA(t *testing.T) {
	// a zero-leading EAN-13 pattern comes back in its 12-digit UPC-A form
	w := expect.WrapT(t)
	e := w.ShouldHaveResult(ean.NewEAN13("088408851633", symbol.Options{})).(*ean.EAN13)
	sym := w.StopOnMismatch().ShouldHaveResult(Decode(e.Bars(), symbol.Options{})).(Symbol)
	u, ok := sym.(*ean.UPCA)
	w.StopOnMismatch().ShouldBeTrue(ok)
	w.ShouldBeEqual(u.Value(), "88408851633")
	w.ShouldBeEqual(u.CheckDigit(), 8)
}

func TestDecode_errors(t *testing.T) {
	w := expect.WrapT(t)

	// nothing frames
	_, err := Decode("x", symbol.Options{})
	w.ShouldFail(err)
	w.ShouldBeTrue(errors.Is(err, symbol.ErrUnencodableCharacters))

	// interleaved framing matches but the embedded check digit is wrong:
	// the specific failure outranks the other symbologies' framing misses
	bad := w.ShouldHaveResult(twooffive.NewInterleaved("12341",
		symbol.Options{SkipChecksum: true})).(*twooffive.Interleaved)
	_, err = Decode(bad.Bars(), symbol.Options{})
	w.ShouldFail(err)
	w.ShouldBeTrue(errors.Is(err, symbol.ErrChecksum))
}
