package metrics

import (
	"context"
	"io"
	"net"
	"strconv"

	"github.com/gocql/gocql"

	"github.com/cqlpager/cqlpager/internal/xerrors"
	"github.com/cqlpager/cqlpager/internal/xstring"
	"github.com/cqlpager/cqlpager/result"
)

func errorBrief(err error) string {
	if err == nil {
		return "OK"
	}
	if xerrors.Is(err, io.EOF) {
		return "io/EOF"
	}
	if netErr := (*net.OpError)(nil); xerrors.As(err, &netErr) {
		buffer := xstring.Buffer()
		defer buffer.Free()
		buffer.WriteString("network")
		if netErr.Op != "" {
			buffer.WriteByte('/')
			buffer.WriteString(netErr.Op)
		}
		if netErr.Addr != nil {
			buffer.WriteByte('[')
			buffer.WriteString(netErr.Addr.String())
			buffer.WriteByte(']')
		}
		if netErr.Err != nil {
			buffer.WriteByte('(')
			buffer.WriteString(errorBrief(netErr.Err))
			buffer.WriteByte(')')
		}

		return buffer.String()
	}
	if xerrors.Is(err, context.DeadlineExceeded) {
		return "context/DeadlineExceeded"
	}
	if xerrors.Is(err, context.Canceled) {
		return "context/Canceled"
	}
	if xerrors.Is(err, result.ErrConcurrentConsumption) {
		return "cqlpager/ConcurrentConsumption"
	}
	if xerrors.Is(err, result.ErrPageNotDrained) {
		return "cqlpager/PageNotDrained"
	}
	if xerrors.Is(err, result.ErrNilPage) {
		return "cqlpager/NilPage"
	}
	if xerrors.Is(err, gocql.ErrNoConnections) {
		return "cassandra/NoConnections"
	}
	if xerrors.Is(err, gocql.ErrTimeoutNoResponse) {
		return "cassandra/Timeout"
	}
	if reqErr := gocql.RequestError(nil); xerrors.As(err, &reqErr) {
		return "cassandra/0x" + strconv.FormatInt(int64(reqErr.Code()), 16)
	}

	return "unknown"
}
