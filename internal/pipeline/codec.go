package pipeline

import (
	"enricher/pkg/domain"

	"github.com/tinylib/msgp/msgp"
)

// Step outputs are checkpointed as MessagePack arrays. Every type implements
// msgp.Marshaler and msgp.Unmarshaler.

type downloadOutput struct {
	Data        []byte
	Fingerprint uint64
}

func (o *downloadOutput) MarshalMsg(b []byte) ([]byte, error) {
	b = msgp.AppendArrayHeader(b, 2)
	b = msgp.AppendBytes(b, o.Data)
	b = msgp.AppendUint64(b, o.Fingerprint)

	return b, nil
}

func (o *downloadOutput) UnmarshalMsg(b []byte) ([]byte, error) {
	b, err := readArrayHeader(b, 2)
	if err != nil {
		return b, err
	}
	if o.Data, b, err = msgp.ReadBytesBytes(b, nil); err != nil {
		return b, msgp.WrapError(err, "Data")
	}
	if o.Fingerprint, b, err = msgp.ReadUint64Bytes(b); err != nil {
		return b, msgp.WrapError(err, "Fingerprint")
	}

	return b, nil
}

type scanOutput struct {
	Candidates []string
	Rows       int
	UsableRows int
	Malformed  int
}

func (o *scanOutput) MarshalMsg(b []byte) ([]byte, error) {
	b = msgp.AppendArrayHeader(b, 4)
	b = appendStrings(b, o.Candidates)
	b = msgp.AppendInt(b, o.Rows)
	b = msgp.AppendInt(b, o.UsableRows)
	b = msgp.AppendInt(b, o.Malformed)

	return b, nil
}

func (o *scanOutput) UnmarshalMsg(b []byte) ([]byte, error) {
	b, err := readArrayHeader(b, 4)
	if err != nil {
		return b, err
	}
	if o.Candidates, b, err = readStrings(b); err != nil {
		return b, msgp.WrapError(err, "Candidates")
	}
	if o.Rows, b, err = msgp.ReadIntBytes(b); err != nil {
		return b, msgp.WrapError(err, "Rows")
	}
	if o.UsableRows, b, err = msgp.ReadIntBytes(b); err != nil {
		return b, msgp.WrapError(err, "UsableRows")
	}
	if o.Malformed, b, err = msgp.ReadIntBytes(b); err != nil {
		return b, msgp.WrapError(err, "Malformed")
	}

	return b, nil
}

type dedupeOutput domain.RecordSet

func (o *dedupeOutput) MarshalMsg(b []byte) ([]byte, error) {
	b = msgp.AppendArrayHeader(b, 2)
	b = appendStrings(b, o.Domains)
	b = msgp.AppendInt(b, o.Dropped)

	return b, nil
}

func (o *dedupeOutput) UnmarshalMsg(b []byte) ([]byte, error) {
	b, err := readArrayHeader(b, 2)
	if err != nil {
		return b, err
	}
	if o.Domains, b, err = readStrings(b); err != nil {
		return b, msgp.WrapError(err, "Domains")
	}
	if o.Dropped, b, err = msgp.ReadIntBytes(b); err != nil {
		return b, msgp.WrapError(err, "Dropped")
	}

	return b, nil
}

type enrichOutput struct {
	Records []domain.EnrichedDomain
}

func (o *enrichOutput) MarshalMsg(b []byte) ([]byte, error) {
	b = msgp.AppendArrayHeader(b, uint32(len(o.Records)))
	for _, r := range o.Records {
		b = msgp.AppendArrayHeader(b, 6)
		b = msgp.AppendString(b, r.Raw)
		b = msgp.AppendString(b, r.Domain)
		b = msgp.AppendBool(b, r.HasMX)
		b = msgp.AppendArrayHeader(b, uint32(len(r.MX)))
		for _, mx := range r.MX {
			b = msgp.AppendArrayHeader(b, 2)
			b = msgp.AppendString(b, mx.Exchange)
			b = msgp.AppendUint16(b, mx.Priority)
		}
		b = appendOptionalString(b, r.SPF)
		b = appendOptionalString(b, r.DMARC)
	}

	return b, nil
}

func (o *enrichOutput) UnmarshalMsg(b []byte) ([]byte, error) {
	n, b, err := msgp.ReadArrayHeaderBytes(b)
	if err != nil {
		return b, msgp.WrapError(err, "Records")
	}

	o.Records = make([]domain.EnrichedDomain, n)
	for i := range o.Records {
		r := &o.Records[i]
		if b, err = readArrayHeader(b, 6); err != nil {
			return b, msgp.WrapError(err, "Records", i)
		}
		if r.Raw, b, err = msgp.ReadStringBytes(b); err != nil {
			return b, msgp.WrapError(err, "Records", i, "Raw")
		}
		if r.Domain, b, err = msgp.ReadStringBytes(b); err != nil {
			return b, msgp.WrapError(err, "Records", i, "Domain")
		}
		if r.HasMX, b, err = msgp.ReadBoolBytes(b); err != nil {
			return b, msgp.WrapError(err, "Records", i, "HasMX")
		}

		var mxCount uint32
		if mxCount, b, err = msgp.ReadArrayHeaderBytes(b); err != nil {
			return b, msgp.WrapError(err, "Records", i, "MX")
		}
		r.MX = make([]domain.MXRecord, mxCount)
		for j := range r.MX {
			if b, err = readArrayHeader(b, 2); err != nil {
				return b, msgp.WrapError(err, "Records", i, "MX", j)
			}
			if r.MX[j].Exchange, b, err = msgp.ReadStringBytes(b); err != nil {
				return b, msgp.WrapError(err, "Records", i, "MX", j, "Exchange")
			}
			if r.MX[j].Priority, b, err = msgp.ReadUint16Bytes(b); err != nil {
				return b, msgp.WrapError(err, "Records", i, "MX", j, "Priority")
			}
		}

		if r.SPF, b, err = readOptionalString(b); err != nil {
			return b, msgp.WrapError(err, "Records", i, "SPF")
		}
		if r.DMARC, b, err = readOptionalString(b); err != nil {
			return b, msgp.WrapError(err, "Records", i, "DMARC")
		}
	}

	return b, nil
}

type persistOutput struct {
	Written int
}

func (o *persistOutput) MarshalMsg(b []byte) ([]byte, error) {
	return msgp.AppendInt(b, o.Written), nil
}

func (o *persistOutput) UnmarshalMsg(b []byte) ([]byte, error) {
	var err error
	if o.Written, b, err = msgp.ReadIntBytes(b); err != nil {
		return b, msgp.WrapError(err, "Written")
	}

	return b, nil
}

func readArrayHeader(b []byte, want uint32) ([]byte, error) {
	n, b, err := msgp.ReadArrayHeaderBytes(b)
	if err != nil {
		return b, err
	}
	if n != want {
		return b, msgp.ArrayError{Wanted: want, Got: n}
	}

	return b, nil
}

func appendStrings(b []byte, values []string) []byte {
	b = msgp.AppendArrayHeader(b, uint32(len(values)))
	for _, v := range values {
		b = msgp.AppendString(b, v)
	}

	return b
}

func readStrings(b []byte) ([]string, []byte, error) {
	n, b, err := msgp.ReadArrayHeaderBytes(b)
	if err != nil {
		return nil, b, err
	}

	values := make([]string, n)
	for i := range values {
		if values[i], b, err = msgp.ReadStringBytes(b); err != nil {
			return nil, b, err
		}
	}

	return values, b, nil
}

func appendOptionalString(b []byte, s *string) []byte {
	if s == nil {
		return msgp.AppendNil(b)
	}

	return msgp.AppendString(b, *s)
}

func readOptionalString(b []byte) (*string, []byte, error) {
	if msgp.IsNil(b) {
		b, err := msgp.ReadNilBytes(b)

		return nil, b, err
	}

	s, b, err := msgp.ReadStringBytes(b)
	if err != nil {
		return nil, b, err
	}

	return &s, b, nil
}
