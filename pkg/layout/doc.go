// Package layout writes classified dump objects to an output directory.
//
// An output root always holds one directory per type code, created up front
// whether or not the dump contains objects of that type:
//
//	AddressBook/
//	├── FN/
//	│   └── addr_InstitutionCountryCode_FN.sql
//	├── SP/
//	│   └── addr_GetAddressTypes_SP.sql
//	├── TB/
//	│   └── addr_ADDRESS_TYPES_TB.sql
//	└── objects.sum
//
// The objects.sum manifest is optional. It uses the h1 sum file format: a total
// hash on the first line followed by one chained SHA256 hash per object file.
//
// # Writing
//
// Write builds the complete image in memory first (GenerateImage), so a
// collision rejected under CollisionError leaves the disk untouched. Files that
// already exist are overwritten.
//
//	objects, _ := dump.ParseAll(dump.Segment(text), dump.FailFast)
//
//	res, err := layout.New("AddressBook", layout.Options{}).Write(objects)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	for _, path := range res.Files {
//		fmt.Println(path)
//	}
//
// # Verifying
//
// Verify reads objects.sum back and reports every listed file that is missing
// or changed, and every object file the manifest does not list.
//
//	sum, err := layout.Verify("AddressBook")
//	if errors.Is(err, layout.ErrManifestMismatch) {
//		fmt.Println(err)
//	}
package layout
