package cover

import (
	"bufio"
	"io"
	"strconv"
)

// WriteTSV writes one "time_in\ttime_out\tvalue\n" line per value of s.
// Numbers use the shortest representation that parses back to the same
// float64; NaN is written as "NaN".
func WriteTSV(w io.Writer, s Series) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 64)

	for i, v := range s.Values {
		buf = buf[:0]
		buf = strconv.AppendFloat(buf, s.TimeIn(i), 'g', -1, 64)
		buf = append(buf, '\t')
		buf = strconv.AppendFloat(buf, s.TimeOut(i), 'g', -1, 64)
		buf = append(buf, '\t')
		buf = strconv.AppendFloat(buf, v, 'g', -1, 64)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}

	return bw.Flush()
}
