// bufdemo is a small runnable exercise of the buffer pool manager against
// an on-disk file (-db) or, by default, an in-memory one, useful for
// poking at clock-replacement behavior by hand. It is not a database server -- the package this repository builds
// is an embeddable library, the way the teacher it's drawn from describes
// itself as "embedded DB form only".
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/halvardb/pagebuf/common"
	"github.com/halvardb/pagebuf/storage/buffer"
	"github.com/halvardb/pagebuf/storage/disk"
)

func main() {
	frames := flag.Int("frames", 4, "number of frames in the buffer pool")
	path := flag.String("db", "", "path to a database file; empty uses an in-memory file")
	debug := flag.Bool("debug", false, "trace frame assignment and eviction")
	pages := flag.Int("pages", 8, "number of pages to allocate and touch")
	flag.Parse()

	cfg := common.DefaultConfig(*frames)
	cfg.Debug = *debug
	bpm := buffer.NewBufferPoolManager(cfg)
	defer bpm.Close()

	file, err := openFile(*path)
	if err != nil {
		log.Fatalf("bufdemo: %v", err)
	}
	defer file.Close()

	for i := 0; i < *pages; i++ {
		pageNo, p, err := bpm.AllocPage(file)
		if err != nil {
			log.Fatalf("bufdemo: alloc page %d: %v", i, err)
		}
		p.Copy(0, []byte(fmt.Sprintf("page-%d", pageNo)))
		if err := bpm.UnpinPage(file, pageNo, true); err != nil {
			log.Fatalf("bufdemo: unpin page %d: %v", pageNo, err)
		}
	}

	bpm.PrintSelf(os.Stdout)

	if err := bpm.FlushFile(file); err != nil {
		log.Fatalf("bufdemo: flush: %v", err)
	}
}

func openFile(path string) (disk.File, error) {
	if path == "" {
		return disk.NewVirtualFile("bufdemo"), nil
	}
	return disk.OpenPagedFile(path)
}
