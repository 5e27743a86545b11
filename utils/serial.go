/*
 * Copyright 2026 The Polis Protocol Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package utils provides low level serialization helpers shared by the
// ledger packages. The element writers produce a deterministic byte stream,
// which is what makes content and block hashing reproducible.
package utils

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/polis-protocol/polis/crypto/hash"
	"github.com/polis-protocol/polis/proto"
)

// maxStringLength limits string allocation during deserialization.
const maxStringLength = 1 << 20

var (
	// ErrStringLengthExceed indicates that a string length exceeds limit during deserialization.
	ErrStringLengthExceed = errors.New("string length exceeds limit")

	// ErrUnsupportedElementType indicates an element type unknown to the serializer.
	ErrUnsupportedElementType = errors.New("unsupported element type")
)

func writeString(w io.Writer, bo binary.ByteOrder, val string) (err error) {
	var lenBuffer [4]byte
	bo.PutUint32(lenBuffer[:], uint32(len(val)))
	if _, err = w.Write(lenBuffer[:]); err != nil {
		return
	}
	_, err = w.Write([]byte(val))
	return
}

func readString(r io.Reader, bo binary.ByteOrder, ret *string) (err error) {
	var lenBuffer [4]byte
	if _, err = io.ReadFull(r, lenBuffer[:]); err != nil {
		return
	}
	valLen := bo.Uint32(lenBuffer[:])
	if valLen > maxStringLength {
		return ErrStringLengthExceed
	}
	buffer := make([]byte, valLen)
	if _, err = io.ReadFull(r, buffer); err != nil {
		return
	}
	*ret = string(buffer)
	return
}

func writeElement(w io.Writer, bo binary.ByteOrder, element interface{}) (err error) {
	switch e := element.(type) {
	case bool:
		var b [1]byte
		if e {
			b[0] = 0x01
		}
		_, err = w.Write(b[:])

	case int64:
		err = binary.Write(w, bo, e)

	case uint64:
		err = binary.Write(w, bo, e)

	case int32:
		err = binary.Write(w, bo, e)

	case uint32:
		err = binary.Write(w, bo, e)

	case string:
		err = writeString(w, bo, e)

	case proto.DID:
		err = writeString(w, bo, string(e))

	case proto.ShardID:
		err = writeString(w, bo, string(e))

	case hash.Hash:
		_, err = w.Write(e[:])

	case *hash.Hash:
		_, err = w.Write((*e)[:])

	default:
		err = ErrUnsupportedElementType
	}

	return
}

func readElement(r io.Reader, bo binary.ByteOrder, element interface{}) (err error) {
	switch e := element.(type) {
	case *bool:
		var b [1]byte
		if _, err = io.ReadFull(r, b[:]); err == nil {
			*e = b[0] != 0x00
		}

	case *int64:
		err = binary.Read(r, bo, e)

	case *uint64:
		err = binary.Read(r, bo, e)

	case *int32:
		err = binary.Read(r, bo, e)

	case *uint32:
		err = binary.Read(r, bo, e)

	case *string:
		err = readString(r, bo, e)

	case *proto.DID:
		err = readString(r, bo, (*string)(e))

	case *proto.ShardID:
		err = readString(r, bo, (*string)(e))

	case *hash.Hash:
		_, err = io.ReadFull(r, (*e)[:])

	default:
		err = ErrUnsupportedElementType
	}

	return
}

// WriteElements writes the elements in order to the writer.
func WriteElements(w io.Writer, bo binary.ByteOrder, elements ...interface{}) (err error) {
	for _, element := range elements {
		if err = writeElement(w, bo, element); err != nil {
			return
		}
	}
	return
}

// ReadElements reads the elements in order from the reader.
func ReadElements(r io.Reader, bo binary.ByteOrder, elements ...interface{}) (err error) {
	for _, element := range elements {
		if err = readElement(r, bo, element); err != nil {
			return
		}
	}
	return
}
