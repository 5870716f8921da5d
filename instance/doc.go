// Package instance is the file I/O boundary of the course kit: it reads
// problem instances from YAML data files and demand histories from the
// course's CSV layout, and writes solved variable assignments back out as
// CSV. Model files in solver formats are not parsed here; LP export lives
// in the model package and solver-side file handling belongs to GLPK.
package instance
