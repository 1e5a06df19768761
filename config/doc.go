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

// Package config builds namefx configurations: defaults, functional
// options, call-site merging and YAML profile files.
//
// A profile file lists named configurations; omitted knobs keep their
// defaults:
//
//	profiles:
//	  default:
//	    ordering: byFirst
//	  registry:
//	    ordering: byLast
//	    separator: comma
//	    title: us
//	    ending: true
//	    bypass: false
//	    surname: hyphenated
package config
