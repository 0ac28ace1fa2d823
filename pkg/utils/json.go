package utils

import (
	"fmt"
	"reflect"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func PrettyJson(in any) string {
	var buffer []byte
	var err error

	if reflect.TypeOf(in) != reflect.TypeOf([]byte{}) {
		buffer, err = json.Marshal(in)
		if err != nil {
			fmt.Println(err)
		}
	} else {
		buffer = in.([]byte)
	}

	var out any
	if err = json.Unmarshal(buffer, &out); err != nil {
		fmt.Println(err)
	}

	pretty, err := json.MarshalIndent(out, "", "\t")
	if err != nil {
		fmt.Println(err)
	}

	return string(pretty)
}
