//go:build generate

package mocks

//go:generate sh -c "go run go.uber.org/mock/mockgen -typed -package mocks -destination stream.go io ReadWriteCloser"
