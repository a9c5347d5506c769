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

package trainer

// TrainError is returned by every trainer failure path spec.md §7 lists:
// corpus-open failure, alphabet-size sanity failure, or model write
// failure.
type TrainError struct {
	code int
	msg  string
}

func (this *TrainError) Error() string {
	return this.msg
}

// Code returns the ERR_* constant associated with this failure.
func (this *TrainError) Code() int {
	return this.code
}

func newTrainError(code int, msg string) *TrainError {
	return &TrainError{code: code, msg: msg}
}
