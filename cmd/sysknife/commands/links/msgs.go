package links

// Message constants
const (
	MsgShort = "Link a random subset of files into a directory"

	MsgLong = `Search the given directories for regular files, pick a random subset of
them and create symbolic links to the picks in the target directory.

Existing entries in the target are never overwritten. Links are named after
the source's base name unless one naming flag is given: --expand turns the
full path into a name, --sequence numbers links 0001.ext, 0002.ext and so on,
--obscure uses the MD5 of the full path.`

	MsgExample = `  sysknife links -d ~/shuffle ~/Music              # 10 random files
  sysknife links -n 50 -e mp3,flac -d /tmp/mix ~/Music
  sysknife links -R -s -O 30 -d /tmp/old /srv/data   # replace links, numbered`

	MsgFlagNumber   = "Number of files to link (default from links.number)"
	MsgFlagDir      = "Target directory for the links (required)"
	MsgFlagExt      = "Only files with these extensions, comma separated"
	MsgFlagOlder    = "Only files modified more than N whole days ago (0: over 24h)"
	MsgFlagNewer    = "Only files modified less than N whole days ago"
	MsgFlagRegex    = "Only files whose name matches this shell pattern"
	MsgFlagRemove   = "Remove existing symlinks in the target first"
	MsgFlagExpand   = "Name links after the full source path (dir-file.ext)"
	MsgFlagSequence = "Name links by sequence number (0001.ext)"
	MsgFlagObscure  = "Name links by the MD5 of the source path"
	MsgFlagDebug    = "Print every link as it is made"
	MsgFlagFinder   = "Search backend: find or walk (default from links.finder)"

	MsgErrNoDirs         = "require at least one directory"
	MsgErrSchemeConflict = "only one of --expand, --sequence or --obscure may be given"
	MsgSummary           = "linked %d, skipped %d, failed %d"
)
