package tally

import "fmt"

//ParseError is the general structure for errors found while reading tally
//output files and decay spectra. It fulfills the Error and FileError
//interfaces of this package.
type ParseError struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err ParseError) Error() string {
	return fmt.Sprintf("gotally: file %s error: %s", err.filename, err.message)
}

//Message returns the bare message of the error, which matches one of the
//message constants of this package, so callers can tell the failure classes
//apart.
func (err ParseError) Message() string { return err.message }

//Decorate adds new information to the error.
func (err ParseError) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since err.deco is a slice, and hence a pointer itself.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the file to which the failing read was associated.
func (err ParseError) FileName() string { return err.filename }

//Critical returns true if the error is critical, false otherwise.
func (err ParseError) Critical() bool { return err.critical }

//Message constants for the failure classes of this package.
const (
	UnableToOpen      = "Unable to open file"
	EmptySpectrum     = "Empty decay spectrum"
	BadSpectrumFormat = "Invalid decay spectrum format"
	NoScoreBlock      = "No SCORE block in output file"
	TallyNotFound     = "Tally definition not found"
	NoExtendedMesh    = "EXTENDED_MESH not found"
	BadMeshFormat     = "Could not read EXTENDED_MESH"
	NoCartesianFrame  = "Tally must have FRAME CARTESIAN"
	BadFrameFormat    = "Could not read FRAME CARTESIAN"
	ResultsNotFound   = "Tally results not found"
	NoDecaySpectrum   = "No decay spectrum"
)

//errDecorate decorates err with the caller's name before returning it, if
//err implements the Error interface of this package. Errors of other types
//are returned untouched, since a TrackWriter may come from anywhere.
func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}
