package functions

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"reflect"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// A call on the wire is a protobuf Struct:
//
//	request:  {"id": 1, "name": "to-hex", "arguments": [...]}
//	response: {"id": 1, "success": <value>} or {"id": 1, "error": "message"}
//
// On a stream, every message begins with a varint holding the length in bytes
// of the remaining message.

// MaxMessageSize is the largest message Serve and ReadMessage accept.
const MaxMessageSize = 16 << 20

// ErrMessageTooLarge is returned when a length header exceeds MaxMessageSize.
var ErrMessageTooLarge = errors.New("message too large")

// CallResponse is a decoded response.
type CallResponse struct {
	ID     uint32
	Result *structpb.Value
	// Error is set if the function failed.
	Error string
}

// Decode unmarshals the result into out, which must be a pointer.
func (r *CallResponse) Decode(out any) error {
	if r.Error != "" {
		return errors.New(r.Error)
	}
	return decodeInto(nil, r.Result, out)
}

// EncodeCall encodes a request to call name with args.
func EncodeCall(id uint32, name string, args ...any) ([]byte, error) {
	arguments := &structpb.ListValue{}
	for _, arg := range args {
		v, err := MarshalValue(reflect.ValueOf(arg))
		if err != nil {
			return nil, err
		}
		arguments.Values = append(arguments.Values, v)
	}
	request := &structpb.Struct{Fields: map[string]*structpb.Value{
		"id":        structpb.NewNumberValue(float64(id)),
		"name":      structpb.NewStringValue(name),
		"arguments": structpb.NewListValue(arguments),
	}}
	return proto.Marshal(request)
}

// DecodeResponse decodes a response created by ExecuteWire.
func DecodeResponse(data []byte) (*CallResponse, error) {
	var response structpb.Struct
	if err := proto.Unmarshal(data, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	fields := response.GetFields()
	return &CallResponse{
		ID:     uint32(fields["id"].GetNumberValue()),
		Result: fields["success"],
		Error:  fields["error"].GetStringValue(),
	}, nil
}

// ExecuteWire decodes a request created by EncodeCall, executes it and
// returns the encoded response. Errors from the called function are
// reported in the response; the error returned is only set if data could
// not be decoded.
func (r *FunctionRegistry) ExecuteWire(data []byte) ([]byte, error) {
	var request structpb.Struct
	if err := proto.Unmarshal(data, &request); err != nil {
		return nil, fmt.Errorf("failed to unmarshal request: %w", err)
	}
	fields := request.GetFields()
	id := fields["id"]
	if id == nil {
		id = structpb.NewNumberValue(0)
	}

	response := &structpb.Struct{Fields: map[string]*structpb.Value{"id": id}}
	if result, err := r.Execute(fields["name"].GetStringValue(), fields["arguments"].GetListValue().GetValues()); err != nil {
		response.Fields["error"] = structpb.NewStringValue(err.Error())
	} else {
		response.Fields["success"] = result
	}

	out, err := proto.Marshal(response)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response: %s", err)
	}
	return out, nil
}

// Serve reads length prefixed requests from in and writes the responses to
// out until in is exhausted.
func (r *FunctionRegistry) Serve(in io.Reader, out io.Writer) error {
	br := bufio.NewReader(in)
	lenBuf := make([]byte, binary.MaxVarintLen64)
	var msgBuf []byte

	for {
		msg, err := readMessage(br, &msgBuf)
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		response, err := r.ExecuteWire(msg)
		if err != nil {
			return err
		}
		if err := writeMessage(out, lenBuf, response); err != nil {
			return err
		}
	}
}

// WriteMessage writes msg to w prefixed with its length.
func WriteMessage(w io.Writer, msg []byte) error {
	return writeMessage(w, make([]byte, binary.MaxVarintLen64), msg)
}

// ReadMessage reads one length prefixed message from r.
func ReadMessage(r *bufio.Reader) ([]byte, error) {
	var buf []byte
	return readMessage(r, &buf)
}

func writeMessage(w io.Writer, lenBuf, msg []byte) error {
	n := binary.PutUvarint(lenBuf, uint64(len(msg)))
	if _, err := w.Write(lenBuf[:n]); err != nil {
		return err
	}
	n, err := w.Write(msg)
	if err == nil && n != len(msg) {
		return errors.New("failed to write payload")
	}
	return err
}

func readMessage(r *bufio.Reader, buf *[]byte) ([]byte, error) {
	// The header is the length in bytes of the remaining message.
	l, err := binary.ReadUvarint(r)
	if err != nil {
		return nil, err
	}
	if l > MaxMessageSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrMessageTooLarge, l)
	}
	plen := int(l)
	if len(*buf) < plen {
		*buf = make([]byte, plen)
	}
	msg := (*buf)[:plen]
	if _, err := io.ReadFull(r, msg); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return msg, nil
}
