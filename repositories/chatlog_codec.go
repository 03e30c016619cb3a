package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"google.golang.org/protobuf/encoding/protowire"

	"world-chat/domain"
	"world-chat/domain/event"
)

// Field numbers of the on-disk chat record. Numbers are never reused.
const (
	fieldID         protowire.Number = 1
	fieldSender     protowire.Number = 2
	fieldSenderName protowire.Number = 3
	fieldKind       protowire.Number = 4
	fieldLanguage   protowire.Number = 5
	fieldText       protowire.Number = 6
	fieldPrefix     protowire.Number = 7
	fieldAudience   protowire.Number = 8
	fieldTarget     protowire.Number = 9
	fieldRecipients protowire.Number = 10
	fieldDetected   protowire.Number = 11
	fieldAt         protowire.Number = 12
)

func marshalRecord(r ChatRecord) []byte {
	var b []byte
	b = appendBytes(b, fieldID, r.ID[:])
	b = appendVarint(b, fieldSender, uint64(r.Sender))
	b = appendString(b, fieldSenderName, r.SenderName)
	b = appendVarint(b, fieldKind, uint64(r.Kind))
	b = appendVarint(b, fieldLanguage, uint64(r.Language))
	b = appendString(b, fieldText, r.Text)
	b = appendString(b, fieldPrefix, r.Prefix)
	b = appendVarint(b, fieldAudience, uint64(r.Audience))
	b = appendString(b, fieldTarget, r.Target)
	b = appendVarint(b, fieldRecipients, uint64(r.Recipients))
	b = appendString(b, fieldDetected, r.Detected)
	b = appendVarint(b, fieldAt, uint64(r.At.UnixNano()))
	return b
}

// UnmarshalRecord skips unknown fields so older binaries can read newer records.
func UnmarshalRecord(b []byte) (ChatRecord, error) {
	var r ChatRecord
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return ChatRecord{}, fmt.Errorf("chat record tag: %w", protowire.ParseError(n))
		}
		b = b[n:]

		switch typ {
		case protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return ChatRecord{}, fmt.Errorf("chat record field %d: %w", num, protowire.ParseError(n))
			}
			b = b[n:]
			setVarint(&r, num, v)
		case protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return ChatRecord{}, fmt.Errorf("chat record field %d: %w", num, protowire.ParseError(n))
			}
			b = b[n:]
			if err := setBytes(&r, num, v); err != nil {
				return ChatRecord{}, err
			}
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return ChatRecord{}, fmt.Errorf("chat record field %d: %w", num, protowire.ParseError(n))
			}
			b = b[n:]
		}
	}
	return r, nil
}

func setVarint(r *ChatRecord, num protowire.Number, v uint64) {
	switch num {
	case fieldSender:
		r.Sender = domain.GUID(v)
	case fieldKind:
		r.Kind = domain.Kind(v)
	case fieldLanguage:
		r.Language = domain.LanguageID(v)
	case fieldAudience:
		r.Audience = event.Audience(v)
	case fieldRecipients:
		r.Recipients = int(v)
	case fieldAt:
		r.At = time.Unix(0, int64(v)).UTC()
	}
}

func setBytes(r *ChatRecord, num protowire.Number, v []byte) error {
	switch num {
	case fieldID:
		id, err := uuid.FromBytes(v)
		if err != nil {
			return fmt.Errorf("chat record id: %w", err)
		}
		r.ID = id
	case fieldSenderName:
		r.SenderName = string(v)
	case fieldText:
		r.Text = string(v)
	case fieldPrefix:
		r.Prefix = string(v)
	case fieldTarget:
		r.Target = string(v)
	case fieldDetected:
		r.Detected = string(v)
	}
	return nil
}

func appendVarint(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func appendBytes(b []byte, num protowire.Number, v []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}
