package tokenizer_test

import (
	"reflect"
	"testing"

	"docsim/internal/tokenizer"
)

// The embedded dictionary is large, so construct the production segmenter
// once and share it across assertions.
func TestDictionarySegmenter(t *testing.T) {
	seg, err := tokenizer.NewDictionarySegmenter(tokenizer.SegmenterOptions{HMM: true})
	if err != nil {
		t.Fatalf("NewDictionarySegmenter returned error: %v", err)
	}

	t.Run("empty input", func(t *testing.T) {
		if got := seg.Segment(""); got != nil {
			t.Fatalf("expected nil segments for empty input, got %v", got)
		}
	})

	t.Run("produces segments", func(t *testing.T) {
		segments := seg.Segment("人工智能是计算机科学的分支")
		if len(segments) == 0 {
			t.Fatal("expected segments for Chinese prose")
		}
		for _, segment := range segments {
			if segment == "" {
				t.Fatal("expected non-empty segments")
			}
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		first := seg.Segment("深度学习模型的训练需要大量数据")
		second := seg.Segment("深度学习模型的训练需要大量数据")
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("segmentation not deterministic: %v vs %v", first, second)
		}
	})
}
