package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvleye/ndarray"
)

// readImage parses a 2-D integer image: one row per non-empty line, values
// separated by white space. Lines starting with '#' are skipped.
func readImage(r io.Reader) (*ndarray.Array[int], error) {
	var rows [][]int
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		row := make([]int, len(fields))
		for k, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("line %d, column %d: %w", line, k+1, err)
			}
			row[k] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return ndarray.FromRows(rows)
}

func readImageFile(file string) (*ndarray.Array[int], error) {
	fh, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	img, err := readImage(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return img, nil
}

// writeImage prints a 2-D image in the format readImage accepts.
func writeImage(w io.Writer, img *ndarray.Array[int]) error {
	rows, err := img.Rows()
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	for _, row := range rows {
		for k, v := range row {
			if k > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.Itoa(v))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
