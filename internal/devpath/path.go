package devpath

// readPath implements §4.5: repeatedly parse a header, dispatch and
// append non-terminator nodes, and stop at the first terminator of either
// kind. It reports which terminator ended the path so readPaths (§4.6) can
// decide whether to continue accumulating or stop entirely.
func readPath(r *Reader) (Path, header, error) {
	var path Path
	for {
		if r.Finished() {
			return nil, header{}, errInvalid("path buffer ended without a terminator")
		}
		h, err := readHeader(r)
		if err != nil {
			return nil, header{}, err
		}
		if h.isTerminator() {
			return path, h, nil
		}
		node, err := decodeByHeader(h)
		if err != nil {
			return nil, header{}, err
		}
		path = append(path, node)
	}
}
