package b

import "os"

func Stop() {
	os.Exit(1)
}
