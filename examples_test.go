package segmenter_test

import (
	"fmt"
	"log"

	"github.com/scalecode-solutions/segmenter"
)

func ExampleSentenceSegmenter() {
	seg, err := segmenter.NewSentenceSegmenter()
	if err != nil {
		log.Fatal(err)
	}

	text := "Mr. Smith went home. He left."
	iter := seg.SegmentString(text)
	prev := int32(0)
	for {
		b := iter.Next()
		if b == segmenter.Done {
			break
		}
		fmt.Printf("%q\n", text[prev:b])
		prev = b
	}
	// Output: "Mr. Smith went home. "
	// "He left."
}

func ExampleSentenceIterator_Next() {
	seg, err := segmenter.NewSentenceSegmenter()
	if err != nil {
		log.Fatal(err)
	}

	iter := seg.SegmentString("One. Two.")
	for b := iter.Next(); b != segmenter.Done; b = iter.Next() {
		fmt.Println(b)
	}
	// Output: 5
	// 9
}

func ExampleLineSegmenter() {
	seg, err := segmenter.NewLineSegmenter()
	if err != nil {
		log.Fatal(err)
	}

	text := "well-known words"
	iter := seg.SegmentString(text)
	prev := int32(0)
	for {
		b := iter.Next()
		if b == segmenter.Done {
			break
		}
		fmt.Printf("%q %v\n", text[prev:b], iter.BreakKind())
		prev = b
	}
	// Output: "well-" 1
	// "known " 1
	// "words" 2
}

func ExampleSentenceSegmenter_SegmentUTF16() {
	seg, err := segmenter.NewSentenceSegmenter()
	if err != nil {
		log.Fatal(err)
	}

	// 日本語。テスト。 as UTF-16 code units.
	text := []uint16{0x65E5, 0x672C, 0x8A9E, 0x3002, 0x30C6, 0x30B9, 0x30C8, 0x3002}
	iter := seg.SegmentUTF16(text)
	for b := iter.Next(); b != segmenter.Done; b = iter.Next() {
		fmt.Println(b)
	}
	// Output: 4
	// 8
}
