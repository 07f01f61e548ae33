package common

import (
	"os"
	"strconv"

	"github.com/bwmarrin/snowflake"
)

const (
	ENABLED  = "enabled"
	DISABLED = "disabled"
)

var snowflakeNode *snowflake.Node

func init() {
	var err error
	snowflakeNode, err = snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
}

// UUIDint64 returns a new snowflake id. Ids are strictly increasing within a
// node, which is what makes reverse id ordering a recency proxy.
func UUIDint64() int64 {
	return snowflakeNode.Generate().Int64()
}

// UUID returns a new snowflake id rendered as a decimal string.
func UUID() string {
	return strconv.FormatInt(UUIDint64(), 10)
}

func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IfEmptyStr returns defval when src is the empty string.
func IfEmptyStr(src string, defval string) string {
	if src == "" {
		return defval
	}
	return src
}
