/*
Copyright 2024 The OMEN-Go Authors
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package model

import "testing"

func TestLevelTableAddAndBucket(t *testing.T) {
	lt := NewLevelTable(2)
	lt.Add(0, "a")
	lt.Add(0, "b")
	lt.Add(1, "c")

	bucket := lt.Bucket(0)

	if len(bucket) != 2 || bucket[0] != "a" || bucket[1] != "b" {
		t.Fatalf("bucket(0) = %v, want [a b]", bucket)
	}

	if lt.Size(1) != 1 {
		t.Fatalf("size(1) = %d, want 1", lt.Size(1))
	}

	if lt.Size(2) != 0 {
		t.Fatalf("size(2) = %d, want 0", lt.Size(2))
	}
}

func TestLevelTableAt(t *testing.T) {
	lt := NewLevelTable(3)
	lt.Add(2, "x")
	lt.Add(2, "y")

	v, ok := lt.At(2, 1)

	if !ok || v != "y" {
		t.Fatalf("At(2,1) = (%q,%v), want (y,true)", v, ok)
	}

	if _, ok := lt.At(2, 5); ok {
		t.Fatalf("At(2,5) should not exist")
	}
}

func TestLevelTableFirstNonEmpty(t *testing.T) {
	lt := NewLevelTable(3)

	if _, ok := lt.FirstNonEmpty(); ok {
		t.Fatalf("empty table should report no non-empty bucket")
	}

	lt.Add(2, "z")

	level, ok := lt.FirstNonEmpty()

	if !ok || level != 2 {
		t.Fatalf("FirstNonEmpty = (%d,%v), want (2,true)", level, ok)
	}
}

func TestLevelTableNextNonEmpty(t *testing.T) {
	lt := NewLevelTable(5)
	lt.Add(1, "a")
	lt.Add(4, "b")

	level, ok := lt.NextNonEmpty(1, 5)

	if !ok || level != 4 {
		t.Fatalf("NextNonEmpty(1,5) = (%d,%v), want (4,true)", level, ok)
	}

	if _, ok := lt.NextNonEmpty(4, 5); ok {
		t.Fatalf("NextNonEmpty(4,5) should find nothing past the last bucket")
	}
}

func TestLevelTableLevelOf(t *testing.T) {
	lt := NewLevelTable(2)
	lt.Add(0, "a")
	lt.Add(1, "b")

	level, ok := lt.LevelOf("b")

	if !ok || level != 1 {
		t.Fatalf("LevelOf(b) = (%d,%v), want (1,true)", level, ok)
	}

	if _, ok := lt.LevelOf("missing"); ok {
		t.Fatalf("LevelOf(missing) should not be found")
	}
}

func TestLevelTableMaxLevel(t *testing.T) {
	lt := NewLevelTable(7)

	if lt.MaxLevel() != 7 {
		t.Fatalf("MaxLevel() = %d, want 7", lt.MaxLevel())
	}
}
