// Copyright (c) 2024, The OTNS Authors.
// All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are met:
// 1. Redistributions of source code must retain the above copyright
//    notice, this list of conditions and the following disclaimer.
// 2. Redistributions in binary form must reproduce the above copyright
//    notice, this list of conditions and the following disclaimer in the
//    documentation and/or other materials provided with the distribution.
// 3. Neither the name of the copyright holder nor the
//    names of its contributors may be used to endorse or promote products
//    derived from this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
// AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
// IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE
// ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE
// LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR
// CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF
// SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS
// INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN
// CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
// ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
// POSSIBILITY OF SUCH DAMAGE.

package cli

import (
	"github.com/alecthomas/participle"
)

// noinspection GoStructTag
type Command struct {
	Beamforming *BeamformingCmd `  @@` //nolint
	Ber         *BerCmd         `| @@` //nolint
	Exit        *ExitCmd        `| @@` //nolint
	Help        *HelpCmd        `| @@` //nolint
	LogLevel    *LogLevelCmd    `| @@` //nolint
	Mimo        *MimoCmd        `| @@` //nolint
	Output      *OutputCmd      `| @@` //nolint
	PathLoss    *PathLossCmd    `| @@` //nolint
	Run         *RunCmd         `| @@` //nolint
	Save        *SaveCmd        `| @@` //nolint
	Slicing     *SlicingCmd     `| @@` //nolint
}

// noinspection GoStructTag
type Number struct {
	Sign  string  `[ @"-" ]`      //nolint
	Value float64 `(@Int|@Float)` //nolint
}

func (n *Number) Float() float64 {
	if n.Sign == "-" {
		return -n.Value
	}
	return n.Value
}

// noinspection GoStructTag
type RangeArgs struct {
	From Number `@@` //nolint
	To   Number `@@` //nolint
}

// noinspection GoStructTag
type BerCmd struct {
	Cmd        struct{}   `"ber"`                              //nolint
	Modulation string     `@( "bpsk"|"qpsk"|"qam16"|"qam64" )` //nolint
	Snr        *RangeArgs `( "snr" @@`                         //nolint
	Step       *Number    `| "step" @@ )*`                     //nolint
}

// noinspection GoStructTag
type BeamformingCmd struct {
	Cmd          struct{} `"beamforming"`                    //nolint
	Architecture string   `@( "analog"|"digital"|"hybrid" )` //nolint
	Antennas     *int     `( "ant" @Int`                     //nolint
	Users        *int     `| "users" @Int`                   //nolint
	Snr          *Number  `| "snr" @@ )*`                    //nolint
}

// noinspection GoStructTag
type MimoCmd struct {
	Cmd      struct{} `"mimo"`               //nolint
	Users    *int     `( "users" @Int`       //nolint
	Antennas []int    `| "ant" ( @Int )+ )*` //nolint
}

// noinspection GoStructTag
type PathLossCmd struct {
	Cmd         struct{}   `"pathloss"`                        //nolint
	Environment string     `@( "urban"|"indoor"|"freespace" )` //nolint
	Freq        *float64   `( "freq" (@Int|@Float)`            //nolint
	BsHeight    *float64   `| "hbs" (@Int|@Float)`             //nolint
	MsHeight    *float64   `| "hms" (@Int|@Float)`             //nolint
	Dist        *RangeArgs `| "dist" @@`                       //nolint
	Step        *float64   `| "step" (@Int|@Float) )*`         //nolint
}

// noinspection GoStructTag
type SlicingCmd struct {
	Cmd     struct{} `"slicing"`                  //nolint
	Service string   `@( "embb"|"urllc"|"mmtc" )` //nolint
	Users   *int     `( "users" @Int`             //nolint
	Load    *float64 `| "load" (@Int|@Float) )*`  //nolint
}

// noinspection GoStructTag
type OutputCmd struct {
	Cmd    struct{} `"output"`                             //nolint
	Format string   `[ @( "table"|"yaml"|"json"|"csv" ) ]` //nolint
}

// noinspection GoStructTag
type RunCmd struct {
	Cmd  struct{} `"run"`              //nolint
	File string   `@String`            //nolint
	Save *string  `[ "save" @String ]` //nolint
}

// noinspection GoStructTag
type SaveCmd struct {
	Cmd  struct{} `"save"`  //nolint
	File string   `@String` //nolint
}

// noinspection GoStructTag
type LogLevelCmd struct {
	Cmd   struct{} `"log"`                                                          //nolint
	Level string   `[ @( "trace"|"debug"|"info"|"warn"|"error"|"off"|"default" ) ]` //nolint
}

// noinspection GoStructTag
type HelpCmd struct {
	Cmd       struct{} `"help"`       //nolint
	HelpTopic string   `[ (@Ident) ]` //nolint
}

// noinspection GoStructTag
type ExitCmd struct {
	Cmd struct{} `"exit"` //nolint
}

var (
	commandParser = participle.MustBuild(&Command{})
)

func parseBytes(b []byte, cmd *Command) error {
	return commandParser.ParseBytes(b, cmd)
}
