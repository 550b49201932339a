// Package dump takes apart SQL Server object dumps.
//
// The script generator in SQL Server Management Studio writes every object
// behind a comment of the form
//
//	/****** Object:  StoredProcedure [addr].[GetAddressTypes]    Script Date: 1/2/2020 10:00:00 AM ******/
//
// This package splits a dump on that marker (Segment), recognizes the
// CREATE FUNCTION, CREATE PROCEDURE or CREATE TABLE signature of each chunk
// (Classify) and derives the names used to store each object on disk.
//
// # Basic usage
//
//	text, _ := os.ReadFile("dump.sql")
//
//	objects, err := dump.ParseAll(dump.Segment(string(text)), dump.FailFast)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	for _, obj := range objects {
//		fmt.Println(obj.Path()) // e.g. SP/addr_GetAddressTypes_SP.sql
//	}
//
// # Naming
//
// Object kinds map to two letter type codes: FUNCTION -> FN, PROCEDURE -> SP,
// TABLE -> TB. The file name is the qualified name with dots replaced by
// underscores, brackets removed and the type code appended. The mapping has no
// collision guard; see the layout package for how collisions are handled.
//
// # Timestamps
//
// UndatedText removes the "Script Date: ..." part of every header so dumps of
// the same objects taken at different times produce identical files.
package dump
