package utils

// SplitText cuts text into rune-based chunks of at most chunkSize, with the
// last `overlap` runes of each chunk repeated at the start of the next so
// sentences spanning a boundary stay retrievable.
func SplitText(text string, chunkSize int, overlap int) []string {
	if len(text) <= chunkSize {
		return []string{text}
	}

	runes := []rune(text)
	total := len(runes)

	step := chunkSize - overlap
	if step <= 0 {
		// Degenerate overlap would loop forever, fall back to disjoint chunks.
		step = chunkSize
	}

	var chunks []string
	for i := 0; i < total; i += step {
		end := i + chunkSize
		if end > total {
			end = total
		}

		chunks = append(chunks, string(runes[i:end]))

		if end == total {
			break
		}
	}

	return chunks
}
