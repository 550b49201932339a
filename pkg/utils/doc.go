// Package utils provides small helpers shared by the mssqlsplit packages.
//
// # Identifier Utilities (identifier.go)
//
// SQL Server quotes identifiers with square brackets. The helpers in this
// package take apart names the way the script generator writes
// them:
//
//	utils.StripBrackets("[dbo].[Orders]")         // "dbo.Orders"
//	utils.SplitQualifiedName("[dbo].[Orders]")    // ["dbo", "Orders"]
//
// SplitQualifiedName keeps dots that appear inside a bracketed part, so
// "[my.schema].[t]" yields ["my.schema", "t"].
package utils
