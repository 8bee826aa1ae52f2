// Package winpath classifies Windows-style target strings and provides the
// UNC helpers shared by the resolvers: canonicalization to "//server/share",
// share splitting, smb:// URI construction and prefix joining.
package winpath
