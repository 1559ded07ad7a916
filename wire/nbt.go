package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	mcnbt "github.com/mc-wire/protocol/nbt"
)

// NBT - Named Binary Tag
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Type:NBT
//
// Data holds either a decoded mcnbt.Tag (when FromBytes produced it) or any
// Go value understood by the nbt package's reflection marshaler (when built
// programmatically via NewNBT/EncodeFrom).
type NBT struct {
	Data any
}

// NewNBT creates a new NBT instance with the given data
func NewNBT(data any) NBT {
	return NBT{Data: data}
}

// NewEmptyNBT creates a new empty NBT instance
func NewEmptyNBT() NBT {
	return NBT{Data: nil}
}

func (n NBT) ToBytes() (ByteArray, error) {
	if n.Data == nil {
		return ByteArray{0x00}, nil
	}

	if tag, ok := n.Data.(mcnbt.Tag); ok {
		data, err := mcnbt.EncodeNetwork(tag)
		if err != nil {
			return nil, fmt.Errorf("failed to encode NBT data: %w", err)
		}
		return ByteArray(data), nil
	}

	data, err := mcnbt.MarshalNetwork(n.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode NBT data: %w", err)
	}
	return ByteArray(data), nil
}

func (n *NBT) FromBytes(data ByteArray) (int, error) {
	if len(data) == 0 {
		return 0, fmt.Errorf("%w: NBT", ErrIncomplete)
	}

	if data[0] == mcnbt.TagEnd {
		n.Data = mcnbt.Compound{}
		return 1, nil
	}

	br := bytes.NewReader(data)
	reader := mcnbt.NewReaderFrom(br)

	tag, _, err := reader.ReadTag(true)
	if err != nil {
		return 0, fmt.Errorf("failed to decode NBT data: %w", err)
	}

	n.Data = tag
	return len(data) - br.Len(), nil
}

// DecodeTo decodes the NBT data into the provided destination
func (n *NBT) DecodeTo(dest any) error {
	if n.Data == nil {
		return fmt.Errorf("NBT data is nil")
	}

	if tag, ok := n.Data.(mcnbt.Tag); ok {
		if err := mcnbt.UnmarshalTag(tag, dest); err != nil {
			return fmt.Errorf("failed to decode NBT to specific type: %w", err)
		}
		return nil
	}

	encoded, err := n.ToBytes()
	if err != nil {
		return fmt.Errorf("failed to encode NBT for type conversion: %w", err)
	}
	if err := mcnbt.Unmarshal(encoded, dest); err != nil {
		return fmt.Errorf("failed to decode NBT to specific type: %w", err)
	}
	return nil
}

// GetAsString attempts to get NBT data as a readable string
func (n NBT) GetAsString() string {
	if text := n.ExtractTextFromNBT(); text != "" {
		return text
	}
	return n.String()
}

// EncodeFrom encodes data from the provided source into this NBT
func (n *NBT) EncodeFrom(src any) error {
	n.Data = src
	return nil
}

// IsEmpty returns true if the NBT contains no data
func (n NBT) IsEmpty() bool {
	if n.Data == nil {
		return true
	}
	if c, ok := n.Data.(mcnbt.Compound); ok {
		return len(c) == 0
	}
	return false
}

// String returns a string representation of the NBT data
func (n NBT) String() string {
	if n.Data == nil {
		return "NBT{empty}"
	}
	return fmt.Sprintf("NBT{%+v}", n.Data)
}

// ExtractTextFromNBT attempts to extract readable text from NBT data.
// This is useful for chat components stored as NBT.
func (n NBT) ExtractTextFromNBT() string {
	if n.Data == nil {
		return ""
	}

	switch data := n.Data.(type) {
	case mcnbt.Compound:
		return extractTextFromCompound(data)
	case mcnbt.String:
		return string(data)
	case string:
		return data
	case map[string]any:
		return extractTextFromMap(data)
	default:
		return fmt.Sprintf("%v", data)
	}
}

// extractTextFromCompound recursively extracts text from an ordered NBT compound.
func extractTextFromCompound(c mcnbt.Compound) string {
	var result strings.Builder

	if text, ok := c.Get("text").(mcnbt.String); ok {
		result.WriteString(string(text))
	}

	if translate, ok := c.Get("translate").(mcnbt.String); ok {
		result.WriteString(string(translate))
		if with, ok := c.Get("with").(mcnbt.List); ok {
			result.WriteString(" [")
			for i, arg := range with.Elements {
				if i > 0 {
					result.WriteString(", ")
				}
				if argCompound, ok := arg.(mcnbt.Compound); ok {
					result.WriteString(extractTextFromCompound(argCompound))
				} else {
					result.WriteString(fmt.Sprintf("%v", arg))
				}
			}
			result.WriteString("]")
		}
	}

	if extra, ok := c.Get("extra").(mcnbt.List); ok {
		for _, item := range extra.Elements {
			if itemCompound, ok := item.(mcnbt.Compound); ok {
				result.WriteString(extractTextFromCompound(itemCompound))
			}
		}
	}

	if result.Len() == 0 {
		for _, entry := range c {
			lower := strings.ToLower(entry.Name)
			if strings.Contains(lower, "text") || strings.Contains(lower, "message") {
				if str, ok := entry.Tag.(mcnbt.String); ok {
					result.WriteString(string(str))
					break
				}
			}
		}
	}

	return result.String()
}

// extractTextFromMap recursively extracts text from a generic map structure,
// kept for NBT decoded via the reflection-based tagToNative path.
func extractTextFromMap(data map[string]any) string {
	var result strings.Builder

	if text, ok := data["text"].(string); ok {
		result.WriteString(text)
	}

	if translate, ok := data["translate"].(string); ok {
		result.WriteString(translate)
		if with, ok := data["with"].([]any); ok {
			result.WriteString(" [")
			for i, arg := range with {
				if i > 0 {
					result.WriteString(", ")
				}
				if argMap, ok := arg.(map[string]any); ok {
					result.WriteString(extractTextFromMap(argMap))
				} else {
					result.WriteString(fmt.Sprintf("%v", arg))
				}
			}
			result.WriteString("]")
		}
	}

	if extra, ok := data["extra"].([]any); ok {
		for _, item := range extra {
			if itemMap, ok := item.(map[string]any); ok {
				result.WriteString(extractTextFromMap(itemMap))
			}
		}
	}

	if result.Len() == 0 {
		for key, value := range data {
			if strings.Contains(strings.ToLower(key), "text") || strings.Contains(strings.ToLower(key), "message") {
				if str, ok := value.(string); ok {
					result.WriteString(str)
					break
				}
			}
		}
	}

	return result.String()
}

// ParseAsTextComponent attempts to parse NBT data as a text component
func (n NBT) ParseAsTextComponent() (*ChatTextComponent, error) {
	if n.Data == nil {
		return nil, fmt.Errorf("NBT data is nil")
	}

	var jsonBytes []byte
	var err error
	if c, ok := n.Data.(mcnbt.Compound); ok {
		jsonBytes, err = json.Marshal(compoundToNative(c))
	} else {
		jsonBytes, err = json.Marshal(n.Data)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to convert NBT to JSON: %w", err)
	}

	component, err := ParseTextComponentFromString(string(jsonBytes))
	if err != nil {
		return nil, err
	}
	return &component, nil
}

// compoundToNative converts an ordered Compound to a plain map for JSON
// marshaling (order does not matter for text-component JSON).
func compoundToNative(c mcnbt.Compound) map[string]any {
	result := make(map[string]any, len(c))
	for _, entry := range c {
		result[entry.Name] = tagToJSONValue(entry.Tag)
	}
	return result
}

func tagToJSONValue(tag mcnbt.Tag) any {
	switch t := tag.(type) {
	case mcnbt.Byte:
		return int8(t)
	case mcnbt.Short:
		return int16(t)
	case mcnbt.Int:
		return int32(t)
	case mcnbt.Long:
		return int64(t)
	case mcnbt.Float:
		return float32(t)
	case mcnbt.Double:
		return float64(t)
	case mcnbt.String:
		return string(t)
	case mcnbt.List:
		out := make([]any, len(t.Elements))
		for i, e := range t.Elements {
			out[i] = tagToJSONValue(e)
		}
		return out
	case mcnbt.Compound:
		return compoundToNative(t)
	default:
		return nil
	}
}
