package main

import (
	"fmt"
	"os"
	"strings"

	"go.dedis.ch/onet/v3/log"
	"gopkg.in/urfave/cli.v1"

	umbral "github.com/dedis/student_19_umbral"
	"github.com/dedis/student_19_umbral/lib"
)

func main() {
	cliApp := cli.NewApp()
	cliApp.Name = "umbral"
	cliApp.Usage = "threshold proxy re-encryption on files"
	cliApp.Version = "0.1"
	cliApp.Commands = []cli.Command{
		{
			Name:    "keygen",
			Usage:   "generate a key pair",
			Aliases: []string{"k"},
			Action:  cmdKeygen,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "out, o",
					Usage: "Prefix for the .sk and .pk files",
					Value: "umbral",
				},
			},
		},
		{
			Name:      "encrypt",
			Usage:     "encrypt a file for a public key",
			Aliases:   []string{"e"},
			ArgsUsage: "file",
			Action:    cmdEncrypt,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "pub, p",
					Usage: "Public key file of the delegating party",
				},
			},
		},
		{
			Name:    "grant",
			Usage:   "generate key fragments delegating decryption",
			Aliases: []string{"g"},
			Action:  cmdGrant,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "sec, s",
					Usage: "Secret key file of the delegating party",
				},
				cli.StringFlag{
					Name:  "pub, p",
					Usage: "Public key file of the receiving party",
				},
				cli.IntFlag{
					Name:  "threshold, t",
					Value: 2,
					Usage: "Fragments needed to open a capsule",
				},
				cli.IntFlag{
					Name:  "shares, n",
					Value: 3,
					Usage: "Fragments to generate",
				},
				cli.StringFlag{
					Name:  "out, o",
					Usage: "Prefix for the .kfrag files",
					Value: "umbral",
				},
			},
		},
		{
			Name:      "reencrypt",
			Usage:     "transform a capsule with one key fragment",
			Aliases:   []string{"r"},
			ArgsUsage: "capsule-file kfrag-file",
			Action:    cmdReencrypt,
		},
		{
			Name:      "decrypt",
			Usage:     "decrypt a file with the delegating secret key",
			Aliases:   []string{"d"},
			ArgsUsage: "capsule-file encrypted-file",
			Action:    cmdDecrypt,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "sec, s",
					Usage: "Secret key file of the delegating party",
				},
			},
		},
		{
			Name:      "open",
			Usage:     "decrypt a file from re-encrypted capsule fragments",
			ArgsUsage: "capsule-file encrypted-file cfrag-file...",
			Action:    cmdOpen,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "sec, s",
					Usage: "Secret key file of the receiving party",
				},
				cli.StringFlag{
					Name:  "pub, p",
					Usage: "Public key file of the delegating party",
				},
			},
		},
	}
	cliApp.Flags = []cli.Flag{
		cli.IntFlag{
			Name:  "debug, d",
			Value: 0,
			Usage: "debug-level: 1 for terse, 5 for maximal",
		},
	}
	cliApp.Before = func(c *cli.Context) error {
		log.SetDebugVisible(c.Int("debug"))
		return nil
	}
	cliApp.Run(os.Args)
}

func cmdKeygen(c *cli.Context) error {
	out := c.String("out")
	sk := lib.NewSecretKey()
	if err := writeString(out+".sk", sk.Serialize()); err != nil {
		return err
	}
	if err := writeString(out+".pk", sk.PublicKey().Serialize()); err != nil {
		return err
	}
	log.Info("Key pair written to", out+".sk", "and", out+".pk")
	return nil
}

func cmdEncrypt(c *cli.Context) error {
	pub := readPublicKey(c)
	file := fileArg(c, 0)
	message, err := os.ReadFile(file)
	log.ErrFatal(err, "Couldn't read input file")

	capsule, ciphertext, err := umbral.Encrypt(pub, message)
	if err != nil {
		return err
	}
	if err := writeString(file+".capsule", capsule.Serialize()); err != nil {
		return err
	}
	if err := os.WriteFile(file+".enc", ciphertext, 0644); err != nil {
		return err
	}
	log.Info("Encrypted", file, "into", file+".enc", "with capsule", file+".capsule")
	return nil
}

func cmdGrant(c *cli.Context) error {
	sec := readSecretKey(c)
	pub := readPublicKey(c)
	threshold := c.Int("threshold")
	shares := c.Int("shares")
	out := c.String("out")

	kfrags, err := umbral.GenerateKFrags(sec, pub, sec, threshold, shares)
	if err != nil {
		return err
	}
	for i, kf := range kfrags {
		name := fmt.Sprintf("%s.kfrag.%d", out, i)
		if err := writeString(name, kf.Serialize()); err != nil {
			return err
		}
	}
	log.Info("Wrote", shares, "key fragments with threshold", threshold)
	return nil
}

func cmdReencrypt(c *cli.Context) error {
	capsule, err := lib.DeserializeCapsule(readString(fileArg(c, 0)))
	log.ErrFatal(err, "Couldn't parse capsule")
	kfragFile := fileArg(c, 1)
	kfrag, err := lib.DeserializeKFrag(readString(kfragFile))
	log.ErrFatal(err, "Couldn't parse key fragment")

	cfrag := umbral.Reencrypt(capsule, kfrag)
	name := strings.Replace(kfragFile, ".kfrag", ".cfrag", 1)
	if name == kfragFile {
		name = kfragFile + ".cfrag"
	}
	if err := writeString(name, cfrag.Serialize()); err != nil {
		return err
	}
	log.Info("Capsule fragment written to", name)
	return nil
}

func cmdDecrypt(c *cli.Context) error {
	sec := readSecretKey(c)
	capsule, err := lib.DeserializeCapsule(readString(fileArg(c, 0)))
	log.ErrFatal(err, "Couldn't parse capsule")
	ciphertext, err := os.ReadFile(fileArg(c, 1))
	log.ErrFatal(err, "Couldn't read encrypted file")

	message, err := umbral.Decrypt(sec, capsule, ciphertext)
	if err != nil {
		log.Fatal("When decrypting:", err)
	}
	fmt.Print(string(message))
	return nil
}

func cmdOpen(c *cli.Context) error {
	sec := readSecretKey(c)
	pub := readPublicKey(c)
	capsule, err := lib.DeserializeCapsule(readString(fileArg(c, 0)))
	log.ErrFatal(err, "Couldn't parse capsule")
	ciphertext, err := os.ReadFile(fileArg(c, 1))
	log.ErrFatal(err, "Couldn't read encrypted file")

	if c.NArg() < 3 {
		log.Fatal("Please give at least one capsule fragment file")
	}
	cfrags := make([]*lib.CapsuleFrag, 0, c.NArg()-2)
	for _, name := range c.Args()[2:] {
		cfrag, err := lib.DeserializeCapsuleFrag(readString(name))
		log.ErrFatal(err, "Couldn't parse capsule fragment", name)
		cfrags = append(cfrags, cfrag)
	}

	message, err := umbral.DecryptReencrypted(sec, pub, capsule, cfrags, ciphertext)
	if err != nil {
		log.Fatal("When opening the capsule:", err)
	}
	fmt.Print(string(message))
	return nil
}

func readSecretKey(c *cli.Context) *lib.SecretKey {
	name := c.String("sec")
	if name == "" {
		log.Fatal("Please provide a secret key file with -s [file]")
	}
	sk, err := lib.DeserializeSecretKey(readString(name))
	log.ErrFatal(err, "Couldn't parse secret key")
	return sk
}

func readPublicKey(c *cli.Context) *lib.PublicKey {
	name := c.String("pub")
	if name == "" {
		log.Fatal("Please provide a public key file with -p [file]")
	}
	pk, err := lib.DeserializePublicKey(readString(name))
	log.ErrFatal(err, "Couldn't parse public key")
	return pk
}

func fileArg(c *cli.Context, i int) string {
	if c.NArg() <= i {
		log.Fatal("Missing file argument")
	}
	return c.Args()[i]
}

func readString(name string) string {
	data, err := os.ReadFile(name)
	log.ErrFatal(err, "Couldn't read", name)
	return strings.TrimSpace(string(data))
}

func writeString(name, content string) error {
	return os.WriteFile(name, []byte(content+"\n"), 0644)
}
