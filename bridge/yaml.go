package bridge

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/Neumenon/jtoo/jtoo"
)

// yamlTagPrefix prefixes the local tags for decimals, dates and timestamps:
// !jtoo/decimal 1_234.5
const yamlTagPrefix = "!jtoo/"

// ToYAML encodes v as a YAML document. Byte strings use !!binary; decimals,
// dates and timestamps keep their JTOO text under a !jtoo/<kind> tag.
func ToYAML(v *jtoo.Value) ([]byte, error) {
	node, err := toYAMLNode(v)
	if err != nil {
		return nil, errors.Wrap(err, "yaml")
	}
	return yaml.Marshal(node)
}

func scalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

func toYAMLNode(v *jtoo.Value) (*yaml.Node, error) {
	if v == nil {
		return nil, errors.New("nil value")
	}
	switch v.Kind() {
	case jtoo.KindBool:
		b, _ := v.AsBool()
		return scalar("!!bool", strconv.FormatBool(b)), nil
	case jtoo.KindInteger:
		n, _ := v.AsInt()
		return scalar("!!int", strconv.FormatInt(n, 10)), nil
	case jtoo.KindString:
		s, _ := v.AsStr()
		return scalar("!!str", s), nil
	case jtoo.KindByteString:
		b, _ := v.AsBytes()
		return scalar("!!binary", base64.StdEncoding.EncodeToString(b)), nil
	case jtoo.KindList:
		items, _ := v.AsList()
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for i, item := range items {
			child, err := toYAMLNode(item)
			if err != nil {
				return nil, errors.Wrapf(err, "index %d", i)
			}
			seq.Content = append(seq.Content, child)
		}
		return seq, nil
	}
	text, err := jtoo.Emit(v)
	if err != nil {
		return nil, err
	}
	return scalar(yamlTagPrefix+v.Kind().String(), text), nil
}

// FromYAML decodes a single YAML document. Mappings become [key, value]
// pair lists in document order, unquoted YAML timestamps become nanosecond
// Timestamps, and floats become decimals.
func FromYAML(data []byte) (*jtoo.Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "yaml decode")
	}
	v, err := fromYAMLNode(&doc)
	if err != nil {
		return nil, errors.Wrap(err, "yaml")
	}
	return v, nil
}

func fromYAMLNode(node *yaml.Node) (*jtoo.Value, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) != 1 {
			return nil, errors.New("empty document")
		}
		return fromYAMLNode(node.Content[0])

	case yaml.AliasNode:
		return fromYAMLNode(node.Alias)

	case yaml.SequenceNode:
		items := make([]*jtoo.Value, 0, len(node.Content))
		for i, child := range node.Content {
			item, err := fromYAMLNode(child)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d: index %d", child.Line, i)
			}
			items = append(items, item)
		}
		return jtoo.List(items...), nil

	case yaml.MappingNode:
		items := make([]*jtoo.Value, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, val := node.Content[i], node.Content[i+1]
			if key.Kind != yaml.ScalarNode {
				return nil, errors.Errorf("line %d: mapping key must be a scalar", key.Line)
			}
			item, err := fromYAMLNode(val)
			if err != nil {
				return nil, errors.Wrapf(err, "key %q", key.Value)
			}
			items = append(items, jtoo.List(jtoo.Str(key.Value), item))
		}
		return jtoo.List(items...), nil

	case yaml.ScalarNode:
		return fromYAMLScalar(node)
	}
	return nil, errors.Errorf("line %d: unsupported YAML node", node.Line)
}

func fromYAMLScalar(node *yaml.Node) (*jtoo.Value, error) {
	tag := node.ShortTag()
	switch tag {
	case "!!null":
		return nil, errors.Errorf("line %d: null is not representable in JTOO", node.Line)
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return nil, err
		}
		return jtoo.Bool(b), nil
	case "!!int":
		var n int64
		if err := node.Decode(&n); err != nil {
			return nil, errors.Wrapf(err, "line %d", node.Line)
		}
		return jtoo.Int(n), nil
	case "!!float":
		if d, err := jtoo.ParseDecimal(node.Value); err == nil {
			return jtoo.Dec(d.Mantissa, d.Exponent), nil
		}
		var f float64
		if err := node.Decode(&f); err != nil {
			return nil, err
		}
		return fromFloat(f)
	case "!!str":
		return jtoo.Str(node.Value), nil
	case "!!binary":
		b, err := base64.StdEncoding.DecodeString(strings.Join(strings.Fields(node.Value), ""))
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: binary", node.Line)
		}
		return jtoo.Bytes(b), nil
	case "!!timestamp":
		var t time.Time
		if err := node.Decode(&t); err != nil {
			return nil, err
		}
		return fromTime(t)
	}
	if kind, ok := strings.CutPrefix(tag, yamlTagPrefix); ok {
		v, _, err := parseKind(kind, node.Value)
		return v, err
	}
	return nil, errors.Errorf("line %d: unsupported tag %s", node.Line, tag)
}
