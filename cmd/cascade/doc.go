// Command cascade joins the audio files listed in a script file into one
// long WAV file.
//
// Usage:
//
//	cascade <scp_file> <output_file>
//
// The script file names one WAV or FLAC file per line; relative names are
// taken from the directory of the script file. The first readable file sets
// the sample rate, channel count and bit depth. Files that cannot be read or
// do not match are skipped with a message on stderr.
package main
