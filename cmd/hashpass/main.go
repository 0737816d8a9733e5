package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/limbo/habitlog/internal/service"
)

// readPassword takes the first argument, or the first line of in without it.
func readPassword(args []string, in io.Reader) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", errors.New("empty password")
	}
	return password, nil
}

// Prints the bcrypt hash to put into AUTH_PASSWORD_HASH.
func main() {
	password, err := readPassword(os.Args[1:], os.Stdin)
	if err != nil {
		log.Fatal("Reading password error: " + err.Error())
	}
	hash, err := service.Hash(password)
	if err != nil {
		log.Fatal("Hashing error: " + err.Error())
	}
	fmt.Println(hash)
}
