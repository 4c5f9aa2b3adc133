package protocol

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe-server/internal/apperror"
)

// payloadSizes - packets carry no length field, so the size follows from the kind.
var payloadSizes = map[Kind]int{
	KindMove:     len("0,0"),
	KindLoadGame: len("X,0,0,0,0,0,0,0,0,0"),
	KindBoard:    len("0,0,0,0,0,0,0,0,0"),
	KindOver:     len("S,0,0,0,0,0,0,0,0,0"),
}

// Reader - frames packets sent by one side of a connection out of a byte stream.
type Reader struct {
	reader *bufio.Reader
	from   Direction
}

func NewReader(r io.Reader, from Direction) *Reader {
	return &Reader{
		reader: bufio.NewReader(r),
		from:   from,
	}
}

// ReadPacket - blocks until a whole packet is read. Malformed input yields a
// *DecodeError and the reader stays usable; a closed or failed stream yields
// apperror.ErrConnectionClosed.
func (that *Reader) ReadPacket() (Packet, error) {
	tag := make([]byte, tagSize)
	if err := that.readFull(tag); err != nil {
		return Packet{}, err
	}

	kind := Kind(tag)
	if !kind.IsKnown() || !kind.SentBy(that.from) {
		return Packet{}, decodeError(tag, "unexpected kind %q", kind)
	}

	if !kind.HasPayload() {
		return Decode(tag)
	}

	sep, err := that.reader.ReadByte()
	if err != nil {
		return Packet{}, closedError(err)
	}

	if sep != separator {
		return Packet{}, decodeError(append(tag, sep), "missing %q after %s", separator, kind)
	}

	var payload []byte
	if kind == KindError {
		payload, err = that.readErrorText()
	} else {
		payload = make([]byte, payloadSizes[kind])
		err = that.readFull(payload)
	}
	if err != nil {
		return Packet{}, err
	}

	data := make([]byte, 0, len(tag)+1+len(payload))
	data = append(data, tag...)
	data = append(data, separator)
	data = append(data, payload...)

	return Decode(data)
}

// readErrorText - reads byte by byte until one of the fixed error texts is complete.
func (that *Reader) readErrorText() ([]byte, error) {
	var text []byte

	for {
		b, err := that.reader.ReadByte()
		if err != nil {
			return nil, closedError(err)
		}
		text = append(text, b)

		matched := false
		for _, candidate := range errorTexts {
			if string(candidate) == string(text) {
				return text, nil
			}
			if strings.HasPrefix(string(candidate), string(text)) {
				matched = true
			}
		}

		if !matched {
			return nil, decodeError(text, "invalid error text")
		}
	}
}

func (that *Reader) readFull(buf []byte) error {
	if _, err := io.ReadFull(that.reader, buf); err != nil {
		return closedError(err)
	}

	return nil
}

func closedError(err error) error {
	return fmt.Errorf("%w: %w", apperror.ErrConnectionClosed, err)
}

// Writer - writes encoded packets to a stream.
type Writer struct {
	writer io.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{writer: w}
}

func (that *Writer) WritePacket(packet Packet) error {
	if _, err := that.writer.Write(Encode(packet)); err != nil {
		return fmt.Errorf("%w: %s: %w", apperror.ErrSendFailure, packet.Kind, err)
	}

	return nil
}
