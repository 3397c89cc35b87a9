/*
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package ean

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	expect "github.com/intel/rsp-sw-toolkit-im-suite-expect"
	"github.com/intel/rsp-sw-toolkit-im-suite-linearcode/symbol"
	"github.com/pkg/errors"
)

func TestEAN13CheckDigit(t *testing.T) {
	w := expect.WrapT(t)

	c := w.ShouldHaveResult(EAN13CheckDigit("088408851633")).(int)
	w.ShouldBeEqual(c, 8)
	c = w.ShouldHaveResult(EAN13CheckDigit("004134300579")).(int)
	w.ShouldBeEqual(c, 6)

	w.ShouldBeTrue(ValidateEAN13CheckDigit("0884088516338"))
	w.ShouldBeFalse(ValidateEAN13CheckDigit("0884088516331"))
	w.ShouldBeFalse(ValidateEAN13CheckDigit("884088516338")) // 12 digits

	_, err := EAN13CheckDigit("12345678901") // one short
	w.ShouldFail(err)
	w.ShouldBeTrue(errors.Is(err, symbol.ErrUnencodableCharacters))
}

func TestNewEAN13(t *testing.T) {
	type eanTest struct {
		name    string
		value   interface{}
		opts    symbol.Options
		check   int
		encoded string
		failAs  error
	}

	for i, tt := range []eanTest{
		{name: "generate check digit", value: "088408851633",
			check: 8, encoded: "0884088516338"},
		{name: "integer value", value: 780990040497,
			check: 9, encoded: "7809900404979"},
		{name: "embedded check digit", value: "0884088516338",
			opts:  symbol.Options{ChecksumIncluded: true},
			check: 8, encoded: "0884088516338"},
		{name: "wrong embedded check digit", value: "0884088516331",
			opts:   symbol.Options{ChecksumIncluded: true},
			failAs: symbol.ErrChecksum},
		{name: "one digit short", value: "08840885163",
			failAs: symbol.ErrUnencodableCharacters},
		{name: "one digit long", value: "0884088516332",
			failAs: symbol.ErrUnencodableCharacters},
		{name: "non-numeric", value: "08840885163x",
			failAs: symbol.ErrUnencodableCharacters},
		{name: "negative integer", value: -88408851633,
			failAs: symbol.ErrUnencodableCharacters},
		{name: "unsupported type", value: 12.5,
			failAs: symbol.ErrUnencodableCharacters},
		{name: "skip checksum is ignored", value: "088408851633",
			opts:  symbol.Options{SkipChecksum: true},
			check: 8, encoded: "0884088516338"},
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.name), func(t *testing.T) {
			w := expect.WrapT(t)
			e, err := NewEAN13(tt.value, tt.opts)
			if tt.failAs != nil {
				w.As(tt.value).ShouldFail(err)
				w.ShouldBeTrue(errors.Is(err, tt.failAs))
				return
			}
			w.As(tt.value).StopOnMismatch().ShouldSucceed(err)
			w.ShouldBeEqual(e.CheckDigit(), tt.check)
			w.ShouldBeEqual(e.EncodedString(), tt.encoded)
			w.ShouldBeEqual(e.Value(), tt.encoded[:12])
			w.ShouldBeEqual(e.EncodedString(), e.Value()+fmt.Sprint(e.CheckDigit()))
		})
	}
}

func TestEAN13DerivedFields(t *testing.T) {
	w := expect.WrapT(t)
	e := w.ShouldHaveResult(NewEAN13("0884088516338", symbol.Options{ChecksumIncluded: true})).(*EAN13)
	w.ShouldBeEqual(e.NumberSystem(), "08")
	w.ShouldBeEqual(e.ManufacturerCode(), "84088")
	w.ShouldBeEqual(e.ProductCode(), "51633")
}

func TestEAN13Render(t *testing.T) {
	w := expect.WrapT(t)
	e := w.ShouldHaveResult(NewEAN13("088408851633", symbol.Options{})).(*EAN13)

	bars := e.Bars()
	w.ShouldHaveLength(bars, 95)
	w.ShouldBeTrue(strings.HasPrefix(bars, "101")) // start guard
	w.ShouldBeTrue(strings.HasSuffix(bars, "101")) // end guard
	w.ShouldBeEqual(e.Bars(), bars)                // deterministic

	rle := e.RLE()
	w.ShouldHaveLength(rle, 59)
	units := 0
	for i := 0; i < len(rle); i++ {
		units += int(rle[i] - '0')
	}
	w.ShouldBeEqual(units, 95)

	_, err := e.WN()
	w.ShouldFail(err)
	w.ShouldBeTrue(errors.Is(err, symbol.ErrNotImplemented))

	// custom bar/space characters
	e = w.ShouldHaveResult(NewEAN13("088408851633",
		symbol.Options{LineChar: '#', SpaceChar: '.'})).(*EAN13)
	w.ShouldBeTrue(strings.HasPrefix(e.Bars(), "#.#"))
	w.ShouldHaveLength(e.Bars(), 95)
}

func TestDecodeEAN13(t *testing.T) {
	w := expect.WrapT(t)
	e := w.ShouldHaveResult(NewEAN13("088408851633", symbol.Options{})).(*EAN13)

	fromBars := w.ShouldHaveResult(DecodeEAN13(e.Bars(), symbol.Options{})).(*EAN13)
	w.ShouldBeEqual(fromBars.Value(), e.Value())
	w.ShouldBeEqual(fromBars.CheckDigit(), e.CheckDigit())

	fromRLE := w.ShouldHaveResult(DecodeEAN13(e.RLE(), symbol.Options{})).(*EAN13)
	w.ShouldBeEqual(fromRLE.Value(), e.Value())
}

func TestDecodeEAN13_badInput(t *testing.T) {
	w := expect.WrapT(t)

	// structurally not an EAN-13 at all
	for _, s := range []string{
		"x",
		strings.Repeat("10", 30), // 60 runs of garbage
		"101",                    // just a guard
		"",
	} {
		_, err := DecodeEAN13(s, symbol.Options{})
		w.As(s).ShouldFail(err)
		w.As(s).ShouldBeTrue(errors.Is(err, symbol.ErrUnencodableCharacters))
	}

	// correct framing, corrupt middle: replace a right-hand group with an
	// even-parity (left-hand) pattern that no right-hand digit uses
	e := w.ShouldHaveResult(NewEAN13("088408851633", symbol.Options{})).(*EAN13)
	rle := []byte(e.RLE())
	copy(rle[32:36], "1123")
	_, err := DecodeEAN13(string(rle), symbol.Options{})
	w.ShouldFail(err)
	w.ShouldBeTrue(errors.Is(err, symbol.ErrUndecodableCharacters))
}

func TestEAN13RoundTrip(t *testing.T) {
	// decode(encode(v)) recovers v for random payloads
	w := expect.WrapT(t)
	for i := 0; i < 200; i++ {
		payload := randDigits(12)
		e := w.As(payload).ShouldHaveResult(NewEAN13(payload, symbol.Options{})).(*EAN13)
		d := w.As(payload).ShouldHaveResult(DecodeEAN13(e.Bars(), symbol.Options{})).(*EAN13)
		w.As(payload).ShouldBeEqual(d.Value(), payload)
		w.As(payload).ShouldBeEqual(d.EncodedString(), e.EncodedString())
	}
}

func TestCanEncodeEAN13(t *testing.T) {
	w := expect.WrapT(t)
	w.ShouldBeTrue(CanEncodeEAN13("088408851633", symbol.Options{}))
	w.ShouldBeTrue(CanEncodeEAN13("0884088516338", symbol.Options{ChecksumIncluded: true}))
	w.ShouldBeFalse(CanEncodeEAN13("08840885163", symbol.Options{}))
	w.ShouldBeFalse(CanEncodeEAN13("0884088516338", symbol.Options{}))
	w.ShouldBeFalse(CanEncodeEAN13("08840885163x", symbol.Options{}))
	w.ShouldBeFalse(CanEncodeEAN13(12.5, symbol.Options{}))
}

func randDigits(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '0' + byte(rand.Intn(10))
	}
	return string(b)
}
