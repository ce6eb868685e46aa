package file_system

const snapshotPrefix = "snapshot/"

func snapshotKey() []byte {
	return []byte(snapshotPrefix + "current")
}
