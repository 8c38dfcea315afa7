//Package ssv writes and reads particle lists as separated-value column
//text, one track per line, optionally compressed. It is the on-disk
//collaborator of the tally sampler; converting a list to binary formats
//such as MCPL is left to the external mcpltool.
package ssv

import (
	"bufio"
	"compress/flate"
	"compress/gzip"
	"compress/lzw"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	tally "github.com/nucleogo/gotally"
)

const lzwLitwidth int = 8

//Write!

//A Writer persists tracks as ssv column text: particle type, energy,
//position, direction and weight. The compression is chosen from the last
//letter of the file name: .gz for gzip, .zst for zstd, r for flate, l for
//lzw, anything else is written uncompressed. It implements
//tally.TrackWriter.
type Writer struct {
	f         *os.File
	h         io.WriteCloser
	filename  string
	ptype     string
	writeable bool
	n         int
}

//wraps a bufio.Writer so the uncompressed path closes like the
//compressed ones.
type flusher struct {
	*bufio.Writer
}

func (f flusher) Close() error { return f.Flush() }

//NewWriter creates the named file and writes the list header to it. ptype
//is the particle type tag of every track in the list ("p" for photons).
//The compression level, where the format has one, can be given as an
//optional argument.
func NewWriter(name, ptype string, compressionLevel ...int) (*Writer, error) {
	level := 9
	if len(compressionLevel) > 0 {
		level = compressionLevel[0]
	}
	S := new(Writer)
	var err error
	S.f, err = os.Create(name)
	if err != nil {
		return nil, Error{UnableToCreate + ": " + err.Error(), name, []string{"NewWriter"}, true}
	}
	format := strings.ToLower(name)[len(name)-1]
	var AnyNewWriter func(io.Writer) (io.WriteCloser, error)
	switch format {
	case 'z':
		AnyNewWriter = func(a io.Writer) (io.WriteCloser, error) { return gzip.NewWriterLevel(a, level) }
	case 't':
		AnyNewWriter = func(a io.Writer) (io.WriteCloser, error) {
			return zstd.NewWriter(a, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		}
	case 'r':
		AnyNewWriter = func(a io.Writer) (io.WriteCloser, error) { return flate.NewWriter(a, level) }
	case 'l':
		AnyNewWriter = func(a io.Writer) (io.WriteCloser, error) { return lzw.NewWriter(a, lzw.MSB, lzwLitwidth), nil }
	default:
		AnyNewWriter = func(a io.Writer) (io.WriteCloser, error) { return flusher{bufio.NewWriter(a)}, nil }
	}
	S.h, err = AnyNewWriter(S.f)
	if err != nil {
		S.f.Close()
		return nil, Error{"Can't write header: " + err.Error(), name, []string{"NewWriter"}, true}
	}
	S.filename = name
	S.ptype = ptype
	S.writeable = true
	if _, err = fmt.Fprintf(S.h, "# ssv %s E x y z dx dy dz w\n", ptype); err != nil {
		S.h.Close()
		S.f.Close()
		return nil, Error{"Can't write header: " + err.Error(), name, []string{"NewWriter"}, true}
	}
	return S, nil
}

//FileName returns the name of the list file.
func (S *Writer) FileName() string { return S.filename }

//Len returns the number of tracks written so far.
func (S *Writer) Len() int { return S.n }

//WNext appends one batch of tracks to the list.
func (S *Writer) WNext(tracks []tally.Track) error {
	if !S.writeable {
		return Error{ListUnIniWrite, S.filename, []string{"WNext"}, true}
	}
	if tracks == nil {
		return Error{NilTracks, S.filename, []string{"WNext"}, true}
	}
	for _, t := range tracks {
		_, err := fmt.Fprintf(S.h, "%s %.9g %.9g %.9g %.9g %.9g %.9g %.9g %.9g\n",
			S.ptype, t.E, t.Pos[0], t.Pos[1], t.Pos[2], t.Dir[0], t.Dir[1], t.Dir[2], t.W)
		if err != nil {
			return Error{WriteFailed + ": " + err.Error(), S.filename, []string{"WNext"}, true}
		}
	}
	S.n += len(tracks)
	return nil
}

//Finalize flushes and closes the list and returns its file name. The
//writer can not be used after this call.
func (S *Writer) Finalize() (string, error) {
	if !S.writeable {
		return "", Error{ListUnIniWrite, S.filename, []string{"Finalize"}, true}
	}
	S.writeable = false
	if err := S.h.Close(); err != nil {
		S.f.Close()
		return "", Error{WriteFailed + ": " + err.Error(), S.filename, []string{"Finalize"}, true}
	}
	if err := S.f.Close(); err != nil {
		return "", Error{WriteFailed + ": " + err.Error(), S.filename, []string{"Finalize"}, true}
	}
	return S.filename, nil
}

//DefaultName returns the conventional list file name for a tally: the
//tally name with the ssv suffix, next to the output file it was read from.
func DefaultName(T *tally.Tally) string {
	return filepath.Join(T.Folder(), T.Name()+".ssv")
}

//Read!

//Read loads a full particle list written by a Writer, returning the
//particle type of the list and its tracks.
func Read(name string) (string, []tally.Track, error) {
	f, err := os.Open(name)
	if err != nil {
		return "", nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"Read"}, true}
	}
	defer f.Close()
	var h io.ReadCloser
	format := strings.ToLower(name)[len(name)-1]
	switch format {
	case 'z':
		h, err = gzip.NewReader(f)
	case 't':
		var d *zstd.Decoder
		d, err = zstd.NewReader(f)
		if err == nil {
			h = d.IOReadCloser()
		}
	case 'r':
		h = flate.NewReader(f)
	case 'l':
		h = lzw.NewReader(f, lzw.MSB, lzwLitwidth)
	default:
		h = io.NopCloser(bufio.NewReader(f))
	}
	if err != nil {
		return "", nil, Error{"Can't read header: " + err.Error(), name, []string{"Read"}, true}
	}
	defer h.Close()
	ptype := ""
	var tracks []tally.Track
	scanner := bufio.NewScanner(h)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "#" {
			if len(fields) >= 3 && fields[1] == "ssv" {
				ptype = fields[2]
			}
			continue
		}
		if len(fields) != 9 {
			return "", nil, Error{WrongFormat, name, []string{"Read"}, true}
		}
		var v [8]float64
		for i := 0; i < 8; i++ {
			v[i], err = strconv.ParseFloat(fields[i+1], 64)
			if err != nil {
				return "", nil, Error{WrongFormat + ": " + err.Error(), name, []string{"Read"}, true}
			}
		}
		tracks = append(tracks, tally.Track{
			E:   v[0],
			Pos: [3]float64{v[1], v[2], v[3]},
			Dir: [3]float64{v[4], v[5], v[6]},
			W:   v[7],
		})
	}
	if err := scanner.Err(); err != nil {
		return "", nil, Error{WrongFormat + ": " + err.Error(), name, []string{"Read"}, true}
	}
	return ptype, tracks, nil
}

//Error is the general structure for particle-list errors. It fulfills the
//tally.Error and tally.FileError interfaces.
type Error struct {
	message  string
	filename string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("ssv file %s error: %s", err.filename, err.message)
}

//Decorate adds new information to the error.
func (err Error) Decorate(deco string) []string {
	//err.deco is a slice, hence a pointer, so a value receiver works here.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the list file associated to the error.
func (err Error) FileName() string { return err.filename }

//Critical returns true if the error is critical, false otherwise.
func (err Error) Critical() bool { return err.critical }

const (
	ListUnIniWrite = "List not open for writing"
	UnableToOpen   = "Unable to open file"
	UnableToCreate = "Unable to create file"
	NilTracks      = "Given nil tracks"
	WriteFailed    = "Write failed"
	WrongFormat    = "Wrong format in the ssv file"
)
