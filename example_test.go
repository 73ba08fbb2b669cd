/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package ddx_test

import (
	"fmt"

	"dirpx.dev/ddx"
	"dirpx.dev/ddx/resolver"
)

type Cat struct{ Name string }

type Parrot struct {
	ddx.ByTypeName
	Words int
}

type Vet struct{}

func (Vet) ExamineCat(c Cat) string { return "examined " + c.Name }

func (Vet) ExamineParrot(p Parrot, extra int) int { return p.Words + extra }

func Example() {
	if err := ddx.Register[Cat]("cat"); err != nil {
		panic(err)
	}

	vet, err := resolver.FromMethods(Vet{})
	if err != nil {
		panic(err)
	}

	out, err := ddx.Dispatch(Cat{Name: "tom"}, "examine", vet)
	fmt.Println(out, err)

	out, err = ddx.Dispatch(Parrot{Words: 40}, "examine", vet, 2)
	fmt.Println(out, err)

	_, err = ddx.Dispatch(struct{ Name string }{}, "examine", vet)
	fmt.Println(err != nil)
	// Output:
	// examined tom <nil>
	// 42 <nil>
	// true
}

func ExampleMethodName() {
	type Shepherd struct{ ddx.ByTypeName }

	name, _ := ddx.MethodName(&Shepherd{}, "herd")
	fmt.Println(name)
	// Output: herd_shepherd
}
