package devpath

// readPaths implements §4.6: accumulate paths, starting a new empty path
// at each EndInstance and returning once EndEntire is consumed. Empty
// paths (including a final empty path produced when EndEntire immediately
// follows EndInstance) are preserved, per §9's "preserving empty trailing
// paths" note.
func readPaths(r *Reader) (Paths, error) {
	paths := Paths{}
	for {
		path, term, err := readPath(r)
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
		if term.isEndEntire() {
			return paths, nil
		}
		// term.isEndInstance(): fall through and start a new path.
	}
}
